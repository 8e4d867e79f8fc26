package companion

// welcomeMessages 各章节会话的开场白
var welcomeMessages = map[int]string{
	1: "Hello! I'm your AI companion for Chapter 1 - Introduction. I'm here to help you craft a compelling " +
		"introduction to your capstone project. I can assist with background information, problem statements, " +
		"objectives, and research questions.",
	2: "Welcome to Chapter 2 - Literature Review! I'll help you organize your literature review, identify key " +
		"themes, find gaps in existing research, and structure your theoretical framework.",
	3: "Ready for Chapter 3 - Methodology! I'll guide you through research design, data collection methods, " +
		"participant selection, ethical considerations, and analytical approaches.",
	4: "Time for Chapter 4 - Results & Analysis! I can help you present findings clearly, create data " +
		"interpretations, discuss implications, and link results to your research questions.",
	5: "Chapter 5 - Conclusion & Recommendations! I'll assist with summarizing key findings, drawing conclusions, " +
		"providing recommendations, and discussing limitations and future research directions.",
}

// genericWelcome 未知章节的兜底开场白
const genericWelcome = "Welcome! I'm here to help with your capstone project."

// fallbackReply 策略失败时追加到会话的占位回复
const fallbackReply = "Sorry, I'm having trouble responding right now. Please try again."

// chapterSuggestions 各章节的快捷提问
var chapterSuggestions = map[int][]string{
	1: {
		"Help me write a problem statement",
		"Suggest research objectives",
		"Guide me with background context",
		"Help with research questions",
	},
	2: {
		"Organize my literature themes",
		"Help identify research gaps",
		"Structure theoretical framework",
		"Suggest citation strategies",
	},
	3: {
		"Choose research methodology",
		"Design data collection plan",
		"Select appropriate sample size",
		"Address ethical considerations",
	},
	4: {
		"Analyze my findings",
		"Create result interpretations",
		"Link results to objectives",
		"Discuss implications",
	},
	5: {
		"Summarize key findings",
		"Write strong conclusions",
		"Develop recommendations",
		"Identify limitations",
	},
}

// WelcomeMessage 返回章节开场白
func WelcomeMessage(chapterNumber int) string {
	if msg, ok := welcomeMessages[chapterNumber]; ok {
		return msg
	}
	return genericWelcome
}

// Suggestions 返回章节快捷提问，未知章节返回空列表
func Suggestions(chapterNumber int) []string {
	return chapterSuggestions[chapterNumber]
}
