package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
	"github.com/MrJerard79809/capstone-scribe/pkg/errors"
)

// Docx 将文档渲染为 Word 格式写入 w：
// 主标题居中加粗，章标题与小节标题加粗分级，正文按编辑段落拆分
func Docx(doc *entity.Document, w io.Writer) error {
	file := docx.New().WithDefaultTheme()

	title := file.AddParagraph().Justification("center")
	title.AddText(doc.Title).Size("36").Bold()
	file.AddParagraph()

	for _, ch := range doc.Chapters {
		heading := file.AddParagraph()
		heading.AddText(fmt.Sprintf("Chapter %d: %s", ch.Number, ch.Title)).Size("28").Bold()
		file.AddParagraph()

		writeParagraphs(file, ch.Content.Introduction)

		for _, sec := range ch.Content.Sections {
			subheading := file.AddParagraph()
			subheading.AddText(sec.Title).Size("24").Bold()
			writeParagraphs(file, sec.Content)
		}

		writeParagraphs(file, ch.Content.Conclusion)
		file.AddParagraph()
	}

	if _, err := file.WriteTo(w); err != nil {
		return errors.ErrExportFailed.WithError(err)
	}
	return nil
}

// writeParagraphs 按空行拆分正文并逐段写入
func writeParagraphs(file *docx.Docx, text string) {
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		file.AddParagraph().AddText(para)
	}
}
