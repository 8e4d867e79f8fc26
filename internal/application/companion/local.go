package companion

import (
	"context"
	"fmt"
	"strings"
)

// cannedReply 罐装回复条目：谓词命中即返回固定文本，按序首个命中生效
type cannedReply struct {
	match func(lowerMessage string) bool
	text  string
}

// keywordMatch 构造关键词子串谓词
func keywordMatch(keyword string) func(string) bool {
	return func(lowerMessage string) bool {
		return strings.Contains(lowerMessage, keyword)
	}
}

// cannedReplies 各章节的罐装回复表，键为章节号
var cannedReplies = map[int][]cannedReply{
	1: {
		{keywordMatch("problem statement"), "For your problem statement, consider these elements:\n" +
			"1. What specific issue are you addressing?\n" +
			"2. Why is this problem important?\n" +
			"3. What gap exists in current knowledge/practice?\n" +
			"4. How will your research contribute to solving this problem?\n\n" +
			`Example structure: "Despite [current situation], there remains [specific gap] which leads to [consequences]. This research addresses [problem] by [your approach].`},
		{keywordMatch("research objectives"), "Research objectives should be SMART (Specific, Measurable, Achievable, Relevant, Time-bound). Consider:\n" +
			"1. General objective: Overall aim of your study\n" +
			"2. Specific objectives: 3-5 detailed goals that support the general objective\n\n" +
			"Format: \"To [action verb] [what] [how] [why]\"\n" +
			`Example: "To examine the effectiveness of digital marketing strategies on customer engagement in small businesses."`},
		{keywordMatch("background"), "Your background section should:\n" +
			"1. Start broad, then narrow to your specific topic\n" +
			"2. Establish the importance of your research area\n" +
			"3. Provide context for your research problem\n" +
			"4. Connect to existing knowledge in the field\n\n" +
			"Structure: General context → Specific area → Your focus → Research gap"},
		{keywordMatch("research questions"), "Good research questions are:\n" +
			"1. Clear and focused\n" +
			"2. Researchable within your timeframe\n" +
			"3. Aligned with your objectives\n" +
			"4. Open-ended (not yes/no)\n\n" +
			`Types: Descriptive ("What is...?"), Comparative ("How does X compare to Y?"), Relationship ("What is the relationship between X and Y?")`},
	},
	2: {
		{keywordMatch("literature themes"), "Organize your literature by themes, not chronologically. Common themes might be:\n" +
			"1. Theoretical foundations\n" +
			"2. Methodological approaches\n" +
			"3. Key findings and trends\n" +
			"4. Contradictions or debates\n" +
			"5. Gaps and limitations\n\n" +
			"Create a literature matrix with: Author, Year, Key findings, Methodology, Relevance to your study"},
		{keywordMatch("research gaps"), "Identify gaps by looking for:\n" +
			"1. Understudied populations or contexts\n" +
			"2. Methodological limitations in existing studies\n" +
			"3. Contradictory findings that need resolution\n" +
			"4. New perspectives or theoretical approaches\n" +
			"5. Practical applications not yet explored\n\n" +
			"Frame gaps as opportunities for your contribution."},
		{keywordMatch("theoretical framework"), "Your theoretical framework should:\n" +
			"1. Define key concepts and variables\n" +
			"2. Explain relationships between concepts\n" +
			"3. Provide lens for data interpretation\n" +
			"4. Connect to your research questions\n\n" +
			"Include: Main theory/model, supporting theories, visual representation (diagram/model)"},
	},
	3: {
		{keywordMatch("methodology"), "Choose methodology based on:\n" +
			"1. Your research questions (What do you want to know?)\n" +
			"2. Nature of your topic (Quantitative/Qualitative/Mixed)\n" +
			"3. Available resources and time\n" +
			"4. Access to participants/data\n\n" +
			"Justify why your chosen approach is most appropriate for answering your research questions."},
		{keywordMatch("data collection"), "Design your data collection plan:\n" +
			"1. What data do you need?\n" +
			"2. How will you collect it? (surveys, interviews, observations)\n" +
			"3. Who are your participants?\n" +
			"4. When and where will you collect data?\n" +
			"5. What tools/instruments will you use?\n\n" +
			"Consider validity, reliability, and ethical requirements."},
		{keywordMatch("sample"), "Sample size depends on:\n" +
			"1. Research design (qualitative: 8-15 for interviews, quantitative: statistical power analysis)\n" +
			"2. Population characteristics\n" +
			"3. Available resources\n" +
			"4. Saturation point (qualitative)\n\n" +
			"Justify your sample size and selection method."},
	},
	4: {
		{keywordMatch("findings"), "Present findings systematically:\n" +
			"1. Organize by research questions/objectives\n" +
			"2. Use clear headings and subheadings\n" +
			"3. Include relevant data (tables, figures, quotes)\n" +
			"4. Describe patterns and trends\n" +
			"5. Highlight key insights\n\n" +
			"Let the data speak - interpret in discussion section."},
		{keywordMatch("interpretations"), "Interpret results by:\n" +
			"1. Explaining what findings mean\n" +
			"2. Connecting to existing literature\n" +
			"3. Addressing research questions\n" +
			"4. Discussing unexpected findings\n" +
			"5. Considering alternative explanations\n\n" +
			"Support interpretations with evidence from your data."},
	},
	5: {
		{keywordMatch("conclusions"), "Strong conclusions should:\n" +
			"1. Directly answer research questions\n" +
			"2. Summarize key findings concisely\n" +
			"3. Demonstrate achievement of objectives\n" +
			"4. Avoid introducing new information\n" +
			"5. Connect back to problem statement\n\n" +
			"Format: Research question → Key finding → Conclusion"},
		{keywordMatch("recommendations"), "Develop recommendations for:\n" +
			"1. Practice/Implementation\n" +
			"2. Policy (if applicable)\n" +
			"3. Future research\n" +
			"4. Theory development\n\n" +
			"Make recommendations specific, actionable, and evidence-based from your findings."},
	},
}

// LocalStrategy 纯本地的罐装回复策略，无外部调用，永不失败
type LocalStrategy struct{}

// NewLocalStrategy 创建本地策略
func NewLocalStrategy() *LocalStrategy {
	return &LocalStrategy{}
}

// Name 实现 Strategy
func (s *LocalStrategy) Name() string { return "local" }

// Reply 按序匹配章节罐装表，未命中时返回插值通用回复
func (s *LocalStrategy) Reply(_ context.Context, in ChatInput) (string, error) {
	lower := strings.ToLower(in.Message)
	for _, canned := range cannedReplies[in.ChapterNumber] {
		if canned.match(lower) {
			return canned.text, nil
		}
	}
	return fmt.Sprintf("I understand you need help with %q. Based on your current content in Chapter %d, here are some suggestions:\n\n"+
		"1. Review your current section structure - does it flow logically?\n"+
		"2. Ensure each section supports your main chapter objective\n"+
		"3. Consider if you need more detail or examples\n"+
		"4. Check that your content aligns with academic writing standards\n\n"+
		"Would you like me to provide more specific guidance for any particular aspect of Chapter %d?",
		in.Message, in.ChapterNumber, in.ChapterNumber), nil
}
