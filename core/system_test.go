package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemValidate(t *testing.T) {
	members := []*Member{
		{ClientID: "a9bd4bd9-85ea-4172-8422-c969a07cecbc"},
		{ClientID: "bbf3bb1a-2b13-4db0-a51f-7f32b08e9a12"},
		{ClientID: "c7a4e7da-1a61-41d7-9a75-a3ba7fcb8ae7"},
	}

	t.Run("valid", func(t *testing.T) {
		s := &System{Members: members, Threshold: 2}
		assert.Nil(t, s.Validate())
	})

	t.Run("no members", func(t *testing.T) {
		s := &System{Threshold: 1}
		assert.NotNil(t, s.Validate())
	})

	t.Run("zero threshold", func(t *testing.T) {
		s := &System{Members: members}
		assert.NotNil(t, s.Validate())
	})

	t.Run("threshold above member count", func(t *testing.T) {
		s := &System{Members: members, Threshold: 4}
		assert.NotNil(t, s.Validate())
	})

	t.Run("duplicate member", func(t *testing.T) {
		s := &System{
			Members:   append(members, &Member{ClientID: members[0].ClientID}),
			Threshold: 2,
		}
		assert.NotNil(t, s.Validate())
	})
}

func TestSystemMembership(t *testing.T) {
	s := &System{
		Admins: []string{"a9bd4bd9-85ea-4172-8422-c969a07cecbc"},
		Members: []*Member{
			{ClientID: "a9bd4bd9-85ea-4172-8422-c969a07cecbc"},
			{ClientID: "bbf3bb1a-2b13-4db0-a51f-7f32b08e9a12"},
		},
		Threshold: 2,
	}

	assert.True(t, s.IsMember("bbf3bb1a-2b13-4db0-a51f-7f32b08e9a12"))
	assert.False(t, s.IsMember("c7a4e7da-1a61-41d7-9a75-a3ba7fcb8ae7"))
	assert.True(t, s.IsAdmin("a9bd4bd9-85ea-4172-8422-c969a07cecbc"))
	assert.False(t, s.IsAdmin("bbf3bb1a-2b13-4db0-a51f-7f32b08e9a12"))
	assert.Len(t, s.MemberIDs(), 2)
}
