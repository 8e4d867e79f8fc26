package entity

import (
	"time"
)

// EditableSection 可编辑的小节
type EditableSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChapterContent 章节的可编辑正文
type ChapterContent struct {
	Introduction string            `json:"introduction"`
	Sections     []EditableSection `json:"sections"`
	Conclusion   string            `json:"conclusion"`
}

// DocumentChapter 编辑器持有的章节，WordCount 随任意字段变更重新计算
type DocumentChapter struct {
	Number     int            `json:"number"`
	Title      string         `json:"title"`
	Content    ChapterContent `json:"content"`
	WordCount  int            `json:"word_count"`
	LastEdited time.Time      `json:"last_edited"`
}

// Document 内存中的可编辑文档，由 GeneratedProject 初始化而来
type Document struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Chapters  []DocumentChapter `json:"chapters"`
	CreatedAt time.Time         `json:"created_at"`
	LastSaved time.Time         `json:"last_saved"`
}

// Clone 返回文档的深拷贝，拷贝与原文档不共享任何可变状态
func (d *Document) Clone() *Document {
	out := *d
	out.Chapters = make([]DocumentChapter, len(d.Chapters))
	for i := range d.Chapters {
		out.Chapters[i] = *d.Chapters[i].Clone()
	}
	return &out
}

// Clone 返回章节的深拷贝
func (c *DocumentChapter) Clone() *DocumentChapter {
	out := *c
	out.Content.Sections = make([]EditableSection, len(c.Content.Sections))
	copy(out.Content.Sections, c.Content.Sections)
	return &out
}

// TotalWords 全文档词数
func (d *Document) TotalWords() int {
	total := 0
	for i := range d.Chapters {
		total += d.Chapters[i].WordCount
	}
	return total
}

// Chapter 按章节号查找章节，未找到返回 nil
func (d *Document) Chapter(number int) *DocumentChapter {
	for i := range d.Chapters {
		if d.Chapters[i].Number == number {
			return &d.Chapters[i]
		}
	}
	return nil
}
