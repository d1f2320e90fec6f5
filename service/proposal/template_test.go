package proposal

import (
	"strings"
	"testing"

	"github.com/bmizerany/assert"
)

func TestExecuteProposalCreated(t *testing.T) {
	view := Proposal{
		Number: 7,
		Action: "proposal_add_blacklist",
		Info: []Item{
			{Key: "action", Value: "proposal_add_blacklist"},
		},
		Meta: []Item{
			{Key: "user", Value: "8017d200-7870-4b82-b53f-74bae1d2dad7", Hint: "alice"},
		},
	}

	post := string(execute("proposal_created", view))
	assert.Equal(t, true, strings.Contains(post, "#7"))
	assert.Equal(t, true, strings.Contains(post, "alice"))
}

func TestExecuteProposalApproved(t *testing.T) {
	view := Proposal{
		ApprovedCount: 2,
		ApprovedBy:    "bob",
	}

	post := string(execute("proposal_approved", view))
	assert.Equal(t, true, strings.Contains(post, "bob"))
	assert.Equal(t, true, strings.Contains(post, "2 Votes"))
}
