// Package document 实现内存文档编辑器：由生成结果初始化可编辑文档，
// 提供章节与小节的字段级修改，并在每次变更后重算词数
package document

import (
	"strings"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// CountWords 统计章节正文的词数：引言、各小节标题与正文、结语
// 拼接后按空白切分，空 token 不计
func CountWords(content entity.ChapterContent) int {
	var b strings.Builder
	b.WriteString(content.Introduction)
	for _, sec := range content.Sections {
		b.WriteByte(' ')
		b.WriteString(sec.Title)
		b.WriteByte(' ')
		b.WriteString(sec.Content)
	}
	b.WriteByte(' ')
	b.WriteString(content.Conclusion)
	return len(strings.Fields(b.String()))
}
