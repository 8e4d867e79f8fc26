package companion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertableTruncatesApplyInstruction(t *testing.T) {
	reply := "Here is your problem statement.\n\nClick 'Apply Content' to add this to your document."
	assert.Equal(t, "Here is your problem statement.", Insertable(reply))

	// 大小写不敏感
	reply = "Draft text. click 'apply content' now."
	assert.Equal(t, "Draft text.", Insertable(reply))
}

func TestInsertableStripsMarkdown(t *testing.T) {
	reply := "## Problem Statement\n**Despite** recent advances, a **gap** remains."
	assert.Equal(t, "Problem Statement\nDespite recent advances, a gap remains.", Insertable(reply))
}

func TestInsertableStripsGeneratedPrefix(t *testing.T) {
	reply := "Generated Problem Statement: The study addresses X."
	assert.Equal(t, "The study addresses X.", Insertable(reply))
}

func TestInsertablePlainTextUnchanged(t *testing.T) {
	reply := "A perfectly plain reply."
	assert.Equal(t, reply, Insertable(reply))
}

func TestInsertableUnbalancedBoldLeftAsIs(t *testing.T) {
	// 启发式净化的已知局限：不成对的标记会残留
	reply := "A **dangling bold marker."
	assert.Equal(t, reply, Insertable(reply))
}
