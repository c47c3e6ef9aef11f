package widgets

import (
	"github.com/google/uuid"

	"github.com/go-drift/drift-lottie/pkg/surface"
)

// LottieContainerIDAttribute is the surface attribute holding the identity
// of the animation attached to it. It is present exactly while an engine
// player is attached.
const LottieContainerIDAttribute = "data-lottie-container-id"

// ensureIdentity stamps s with a fresh random token unless it already has
// one, and returns the token in effect.
func ensureIdentity(s surface.Attributes) string {
	if id, ok := s.Attribute(LottieContainerIDAttribute); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	s.SetAttribute(LottieContainerIDAttribute, id)
	return id
}

// surfaceIdentity returns the token on s, or "" when unstamped.
func surfaceIdentity(s surface.Attributes) string {
	id, _ := s.Attribute(LottieContainerIDAttribute)
	return id
}

func clearIdentity(s surface.Attributes) {
	s.RemoveAttribute(LottieContainerIDAttribute)
}
