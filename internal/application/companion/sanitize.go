package companion

import (
	"regexp"
	"strings"
)

// 文本净化是尽力而为的启发式处理：规则与助手被要求的措辞耦合，
// 措辞变化时可能残留零散标记字符，调用方不应假设输出是严格的纯文本。
var (
	applyInstruction = regexp.MustCompile(`(?is)\s*click\s+'apply content'.*$`)
	boldWrapper      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	headingPrefix    = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	generatedPrefix  = regexp.MustCompile(`(?m)^Generated [^:\n]{1,60}:\s*`)
)

// Insertable 将助手回复整理为可直接插入文档的正文：
// 截断结尾的操作指引短语，去除粗体包裹、标题前缀与 "Generated X:" 行首
func Insertable(reply string) string {
	text := applyInstruction.ReplaceAllString(reply, "")
	text = boldWrapper.ReplaceAllString(text, "$1")
	text = headingPrefix.ReplaceAllString(text, "")
	text = generatedPrefix.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
