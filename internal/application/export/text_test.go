package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

func sampleDocument() *entity.Document {
	return &entity.Document{
		ID:    "doc-1",
		Title: "Smart Triage",
		Chapters: []entity.DocumentChapter{
			{
				Number: 1,
				Title:  "Introduction and Background",
				Content: entity.ChapterContent{
					Introduction: "Intro text.",
					Sections: []entity.EditableSection{
						{Title: "Background of the Study", Content: "Body one.\n\nBody two."},
					},
					Conclusion: "Wrap up.",
				},
			},
			{
				Number: 2,
				Title:  "Review of Related Literature",
				Content: entity.ChapterContent{
					Introduction: "Review intro.",
					Sections:     []entity.EditableSection{{Title: "Theoretical Framework", Content: "Theory."}},
					Conclusion:   "Review wrap.",
				},
			},
		},
	}
}

func TestTextLayout(t *testing.T) {
	out := Text(sampleDocument())

	// 标题下划线与标题等长
	assert.True(t, strings.HasPrefix(out, "Smart Triage\n============\n\n"))

	assert.Contains(t, out, "CHAPTER 1: INTRODUCTION AND BACKGROUND\n"+strings.Repeat("=", 50)+"\n\n")
	assert.Contains(t, out, "CHAPTER 2: REVIEW OF RELATED LITERATURE\n")
	assert.Contains(t, out, "Background of the Study\n"+strings.Repeat("-", len("Background of the Study"))+"\nBody one.\n\nBody two.\n\n")
	assert.Contains(t, out, "Intro text.\n\n")
	assert.Contains(t, out, "Wrap up.\n\n\n"+strings.Repeat("=", 50)+"\n\n")
	assert.True(t, strings.HasSuffix(out, strings.Repeat("=", 50)+"\n\n"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Smart_Triage__A_Study_.txt", Filename("Smart Triage: A Study!", "txt"))
	assert.Equal(t, "Smart_Triage.txt", Filename("Smart Triage", "txt"))
	assert.Equal(t, "A1_b2.docx", Filename("A1 b2", "docx"))
}

func TestDocxProducesArchive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Docx(sampleDocument(), &buf))

	// docx 是 zip 容器，校验魔数即可
	require.Greater(t, buf.Len(), 4)
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
