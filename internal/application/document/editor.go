package document

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
	"github.com/MrJerard79809/capstone-scribe/pkg/errors"
	"github.com/MrJerard79809/capstone-scribe/pkg/metrics"
)

// 可修改的章节字段与小节字段
const (
	FieldTitle        = "title"
	FieldIntroduction = "introduction"
	FieldConclusion   = "conclusion"
	FieldContent      = "content"
)

// contentPlaceholder 追加在每个预生成小节正文之后的编辑提示
const contentPlaceholder = "[Add your detailed content here...]"

// conclusionPlaceholder 章节结语的初始占位文本
const conclusionPlaceholder = "This chapter concludes with [add your key takeaways and transition to next chapter]..."

// Editor 文档编辑服务。读写都经过同一把互斥锁，
// 对外只返回深拷贝快照，调用方序列化时不会碰到并发编辑中的文档
type Editor struct {
	mu    sync.Mutex
	store *Store
}

// NewEditor 创建编辑服务
func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// CreateFromProject 由生成的项目骨架初始化可编辑文档并入库。
// 每章合成固定引言、带占位提示的小节正文与占位结语，词数随即计算
func (e *Editor) CreateFromProject(project *entity.GeneratedProject) *entity.Document {
	now := time.Now()
	chapters := make([]entity.DocumentChapter, 0, len(project.Chapters))
	for _, ch := range project.Chapters {
		sections := make([]entity.EditableSection, 0, len(ch.Sections))
		for _, sec := range ch.Sections {
			sections = append(sections, entity.EditableSection{
				Title:   sec.Title,
				Content: sec.Content + "\n\n" + contentPlaceholder,
			})
		}
		content := entity.ChapterContent{
			Introduction: introductionText(ch.Number, ch.Title, project.MainTitle),
			Sections:     sections,
			Conclusion:   conclusionPlaceholder,
		}
		chapters = append(chapters, entity.DocumentChapter{
			Number:     ch.Number,
			Title:      ch.Title,
			Content:    content,
			WordCount:  CountWords(content),
			LastEdited: now,
		})
	}

	doc := &entity.Document{
		Title:     project.MainTitle,
		Chapters:  chapters,
		CreatedAt: now,
		LastSaved: now,
	}
	e.store.Put(doc)
	return doc.Clone()
}

// introductionText 按章节号合成引言；第一章引用主标题冒号前的部分
func introductionText(number int, chapterTitle, mainTitle string) string {
	switch number {
	case 1:
		subject := strings.SplitN(mainTitle, ":", 2)[0]
		return fmt.Sprintf("This chapter provides an introduction to the research study on %q. "+
			"The following sections will establish the foundation for this investigation by presenting the "+
			"background context, defining the research problem, and outlining the objectives that guide this study.", subject)
	case 2:
		return "This chapter presents a comprehensive review of existing literature relevant to this research. " +
			"The review synthesizes current knowledge, identifies gaps in the field, and establishes the " +
			"theoretical framework that supports this investigation."
	case 3:
		return "This chapter details the research methodology employed in this study. The systematic approach " +
			"described here ensures the reliability and validity of the research findings through carefully " +
			"designed procedures and appropriate analytical techniques."
	case 4:
		return "This chapter presents the findings from the data analysis and provides a comprehensive discussion " +
			"of the results. The analysis addresses each research objective and interprets the findings within " +
			"the context of the established theoretical framework."
	case 5:
		return "This chapter concludes the research study by summarizing the key findings, drawing evidence-based " +
			"conclusions, and providing recommendations for practice and future research. The implications of " +
			"this work for the field are discussed in detail."
	default:
		return fmt.Sprintf("This chapter focuses on %s.", strings.ToLower(chapterTitle))
	}
}

// Get 取出文档快照
func (e *Editor) Get(id string) (*entity.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, ok := e.store.Get(id)
	if !ok {
		return nil, errors.ErrDocumentNotFound.WithDetail(id)
	}
	return doc.Clone(), nil
}

// UpdateTitle 修改文档主标题
func (e *Editor) UpdateTitle(id, title string) (*entity.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, ok := e.store.Get(id)
	if !ok {
		return nil, errors.ErrDocumentNotFound.WithDetail(id)
	}
	doc.Title = title
	return doc.Clone(), nil
}

// UpdateChapter 修改章节级字段（title/introduction/conclusion），
// 变更后重算词数并刷新编辑时间
func (e *Editor) UpdateChapter(id string, number int, field, value string) (*entity.DocumentChapter, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, ok := e.store.Get(id)
	if !ok {
		return nil, errors.ErrDocumentNotFound.WithDetail(id)
	}
	chapter := doc.Chapter(number)
	if chapter == nil {
		return nil, errors.ErrChapterNotFound.WithDetail(strconv.Itoa(number))
	}

	switch field {
	case FieldTitle:
		chapter.Title = value
	case FieldIntroduction:
		chapter.Content.Introduction = value
	case FieldConclusion:
		chapter.Content.Conclusion = value
	default:
		return nil, errors.ErrInvalidParam.WithDetail("unknown chapter field: " + field)
	}

	e.touch(chapter)
	return chapter.Clone(), nil
}

// UpdateSection 修改小节级字段（title/content），小节按 0 起始下标定位
func (e *Editor) UpdateSection(id string, number, index int, field, value string) (*entity.DocumentChapter, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, ok := e.store.Get(id)
	if !ok {
		return nil, errors.ErrDocumentNotFound.WithDetail(id)
	}
	chapter := doc.Chapter(number)
	if chapter == nil {
		return nil, errors.ErrChapterNotFound.WithDetail(strconv.Itoa(number))
	}
	if index < 0 || index >= len(chapter.Content.Sections) {
		return nil, errors.ErrSectionNotFound.WithDetail(strconv.Itoa(index))
	}

	switch field {
	case FieldTitle:
		chapter.Content.Sections[index].Title = value
	case FieldContent:
		chapter.Content.Sections[index].Content = value
	default:
		return nil, errors.ErrInvalidParam.WithDetail("unknown section field: " + field)
	}

	e.touch(chapter)
	return chapter.Clone(), nil
}

// Save 刷新文档的保存时间戳
func (e *Editor) Save(id string) (*entity.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, ok := e.store.Get(id)
	if !ok {
		return nil, errors.ErrDocumentNotFound.WithDetail(id)
	}
	doc.LastSaved = time.Now()
	return doc.Clone(), nil
}

// touch 变更后的统一收尾：重算词数、刷新编辑时间、上报词数分布
func (e *Editor) touch(chapter *entity.DocumentChapter) {
	chapter.WordCount = CountWords(chapter.Content)
	chapter.LastEdited = time.Now()
	metrics.DocumentWordCount.WithLabelValues(strconv.Itoa(chapter.Number)).Observe(float64(chapter.WordCount))
}
