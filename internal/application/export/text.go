// Package export 将内存文档渲染为可下载的成品格式
package export

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// chapterRuleWidth 章节分隔线的固定宽度
const chapterRuleWidth = 50

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename 由文档标题派生下载文件名，非字母数字字符替换为下划线
func Filename(title, ext string) string {
	return unsafeFilenameChars.ReplaceAllString(title, "_") + "." + ext
}

// Text 渲染纯文本格式：标题配等长下划线，每章以定宽分隔线包围，
// 小节标题配等长短划线
func Text(doc *entity.Document) string {
	var b strings.Builder

	b.WriteString(doc.Title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(doc.Title)))
	b.WriteString("\n\n")

	for _, ch := range doc.Chapters {
		fmt.Fprintf(&b, "CHAPTER %d: %s\n", ch.Number, strings.ToUpper(ch.Title))
		b.WriteString(strings.Repeat("=", chapterRuleWidth))
		b.WriteString("\n\n")

		b.WriteString(ch.Content.Introduction)
		b.WriteString("\n\n")

		for _, sec := range ch.Content.Sections {
			b.WriteString(sec.Title)
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("-", utf8.RuneCountInString(sec.Title)))
			b.WriteByte('\n')
			b.WriteString(sec.Content)
			b.WriteString("\n\n")
		}

		b.WriteString(ch.Content.Conclusion)
		b.WriteString("\n\n")
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("=", chapterRuleWidth))
		b.WriteString("\n\n")
	}

	return b.String()
}
