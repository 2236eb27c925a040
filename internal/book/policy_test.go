package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanWrite(t *testing.T) {
	owner := int64(1)

	tests := []struct {
		name  string
		actor Actor
		owner *int64
		want  bool
	}{
		{name: "owner may write", actor: Actor{ID: 1}, owner: &owner, want: true},
		{name: "staff may write any book", actor: Actor{ID: 99, Staff: true}, owner: &owner, want: true},
		{name: "staff may write ownerless books", actor: Actor{ID: 99, Staff: true}, owner: nil, want: true},
		{name: "other user may not write", actor: Actor{ID: 2}, owner: &owner, want: false},
		{name: "non-staff may not write ownerless books", actor: Actor{ID: 1}, owner: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanWrite(tt.actor, tt.owner))
		})
	}
}
