package generation

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// sectionAppendix 小节特判条目：命中谓词即追加固定文本块，按序首个命中生效
type sectionAppendix struct {
	chapter int
	match   func(normalizedTitle string) bool
	text    string
}

// chapter1Appendices 第一章的固定程序性附注（标准作业程序文本块）
var chapter1Appendices = []sectionAppendix{
	{
		chapter: 1,
		match:   func(t string) bool { return strings.Contains(t, "statement of the problem") },
		text: "Standard Operating Procedures (SOPs) applied to address the problem: " +
			"(1) Problem Analysis SOP – identify, categorize, and prioritize root causes; " +
			"(2) Solution Development SOP – design candidate interventions, evaluate feasibility, and plan pilots; " +
			"(3) Implementation Monitoring SOP – track KPIs, gather feedback, and iterate improvements.",
	},
	{
		chapter: 1,
		match:   func(t string) bool { return strings.Contains(t, "scope and limitations") },
		text: "To manage constraints, the study enforces: " +
			"(1) Scope Definition SOP – explicit inclusion/exclusion criteria and resource allocation; " +
			"(2) Risk Mitigation SOP – early identification of risks with response plans; " +
			"(3) Quality Assurance SOP – periodic checks for validity, reliability, and adherence to protocol.",
	},
}

// narrativeFrame 返回章节类型对应的两段叙事框架
func narrativeFrame(chapterNumber int, topic, lowerTitle string) []string {
	switch chapterNumber {
	case 1:
		return []string{
			fmt.Sprintf("This opening chapter establishes the research context and rationale for studying %s. "+
				"It clarifies the foundational concepts, situates the study within its real-world setting, "+
				"and frames why the inquiry matters.", topic),
			fmt.Sprintf("In the %s, key elements are articulated: the context of the issue, the core gap to be addressed, "+
				"and the expected contributions. The discussion aligns the research objectives and questions with the "+
				"significance of the study and defines the scope and limitations to maintain a realistic and achievable investigation.", lowerTitle),
		}
	case 2:
		return []string{
			fmt.Sprintf("This chapter synthesizes theories and prior studies relevant to %s. "+
				"It maps seminal works, competing viewpoints, and methodological patterns to build a clear "+
				"theoretical and conceptual foundation.", topic),
			fmt.Sprintf("For the %s, emphasis is placed on tracing key constructs, comparing findings across sources, "+
				"and identifying where knowledge converges or diverges. The section culminates in a precise research gap "+
				"that justifies the present study.", lowerTitle),
		}
	case 3:
		return []string{
			"This chapter details the research design, population/sampling, instruments, procedures, and analysis " +
				"techniques that ensure rigor and replicability. Choices are aligned with the research objectives and constraints.",
			fmt.Sprintf("Within the %s, protocols are specified for data collection, operational definitions, instrument "+
				"validation, and ethical safeguards. Analysis plans describe how data will be processed to answer each "+
				"research question with appropriate statistics or qualitative techniques.", lowerTitle),
		}
	case 4:
		return []string{
			"Here the study presents results derived from the collected data and interprets them in relation to the " +
				"research questions, theory, and prior literature. Visualizations and tables support transparent reporting.",
			fmt.Sprintf("In the %s, findings are explained for practical and theoretical significance, including effect "+
				"sizes or thematic strength, limitations in inference, and comparisons with earlier studies. Implications "+
				"highlight how stakeholders can use the results.", lowerTitle),
		}
	case 5:
		return []string{
			"The final chapter consolidates insights, states evidence-backed conclusions, and proposes actionable " +
				"recommendations. It also clarifies the study's contributions and outlines promising directions for future work.",
			fmt.Sprintf("For the %s, the narrative links conclusions to the data, prioritizes recommendations by "+
				"feasibility and impact, and reflects on limitations encountered. Future research suggestions indicate "+
				"how subsequent studies can extend or refine the present work.", lowerTitle),
		}
	default:
		return []string{
			fmt.Sprintf("This section provides targeted analysis tailored to the chapter's objectives, ensuring clear "+
				"alignment between %s and the overarching investigation of %s.", lowerTitle, topic),
		}
	}
}

// GenerateSectionContent 为单个小节生成多段正文，段落以空行分隔。
// 方法论侧重短语按小节标题与章节号做稳定哈希选取，同输入必得同输出；
// 缺失的 topic/field 只会得到语义残缺的文本，不构成错误，上游负责校验。
func (e *Engine) GenerateSectionContent(sectionTitle, description string, input entity.FormInput, chapterNumber int) string {
	tpl := LookupField(input.Field)
	lowerTitle := strings.ToLower(sectionTitle)

	paragraphs := make([]string, 0, 8)
	if description != "" {
		paragraphs = append(paragraphs, description)
	}

	approach := ""
	if input.ResearchType != "" {
		approach = fmt.Sprintf(" using a %s approach", input.ResearchType)
	}
	paragraphs = append(paragraphs, fmt.Sprintf("This %s focuses on %s%s.", lowerTitle, input.Topic, approach))

	paragraphs = append(paragraphs, narrativeFrame(chapterNumber, input.Topic, lowerTitle)...)

	// 第一章特判附注：按序匹配，命中第一条即止
	for _, appendix := range chapter1Appendices {
		if appendix.chapter == chapterNumber && appendix.match(lowerTitle) {
			paragraphs = append(paragraphs, appendix.text)
			break
		}
	}

	methodology := tpl.MethodologyFocus[stableIndex(sectionTitle, chapterNumber, len(tpl.MethodologyFocus))]
	paragraphs = append(paragraphs, fmt.Sprintf("Field-specific perspective: Emphasizes %s for %s within the %s context.",
		strings.ToLower(methodology), input.Topic, lowerTitle))

	if keywords := input.KeywordList(); len(keywords) > 0 {
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		paragraphs = append(paragraphs, fmt.Sprintf("Key aspects of this research include %s, which are essential "+
			"components of %s. These elements provide critical context for understanding the broader implications "+
			"of the study and its potential applications.", strings.Join(keywords, ", "), input.Topic))
	}

	return strings.Join(paragraphs, "\n\n")
}

// stableIndex 对小节标题与章节号取 FNV 哈希得到稳定下标
func stableIndex(sectionTitle string, chapterNumber, n int) int {
	if n <= 1 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(sectionTitle))
	h.Write([]byte{byte(chapterNumber)})
	return int(h.Sum32() % uint32(n))
}
