package generation

import (
	"fmt"
)

// SectionTemplate 小节模板：标题与通用描述
type SectionTemplate struct {
	Title       string
	Description string
}

// ChapterTemplate 章节模板，五种固定学术章节类型各一份
type ChapterTemplate struct {
	Titles        []string
	Objectives    []string
	Sections      []SectionTemplate
	ExpectedPages string
	KeyComponents []string
}

// chapterTemplates 固定章节模板库，下标 0..4 对应章节 1..5
var chapterTemplates = [5]ChapterTemplate{
	{
		Titles: []string{
			"Introduction and Background",
			"Problem Statement and Research Context",
			"Introduction to the Study",
		},
		Objectives: []string{
			"Establish the research problem and its significance",
			"Define research objectives and questions",
			"Present the scope and limitations of the study",
			"Outline the structure and organization of the research",
		},
		Sections: []SectionTemplate{
			{"Background of the Study", "Provides contextual information about the research area and establishes the foundation for the investigation."},
			{"Statement of the Problem", "Clearly articulates the specific problem or gap that the research addresses. Includes three Standard Operating Procedures (SOPs) to systematically solve the identified issues: 1) Problem Analysis SOP - systematic identification and documentation of root causes; 2) Solution Development SOP - structured approach to developing evidence-based solutions; 3) Implementation Monitoring SOP - continuous assessment and adjustment protocols."},
			{"Research Objectives", "Lists the primary and secondary objectives that guide the research investigation."},
			{"Research Questions", "Formulates specific questions that the study aims to answer through systematic investigation."},
			{"Significance of the Study", "Explains the importance and potential impact of the research findings."},
			{"Scope and Limitations", "Defines the boundaries of the study and acknowledges inherent constraints. Includes three Standard Operating Procedures (SOPs) to address limitations: 1) Scope Definition SOP - systematic boundary setting and resource allocation protocols; 2) Risk Mitigation SOP - proactive identification and management of potential study constraints; 3) Quality Assurance SOP - continuous monitoring and validation procedures to maintain research integrity within defined limitations."},
		},
		ExpectedPages: "15-25 pages",
		KeyComponents: []string{"Problem identification", "Research rationale", "Conceptual framework", "Thesis statement"},
	},
	{
		Titles: []string{
			"Literature Review and Theoretical Framework",
			"Review of Related Literature",
			"Theoretical Foundation and Related Studies",
		},
		Objectives: []string{
			"Synthesize existing knowledge in the research area",
			"Identify gaps in current literature",
			"Establish theoretical foundation for the study",
			"Develop conceptual framework for research",
		},
		Sections: []SectionTemplate{
			{"Theoretical Framework", "Presents the underlying theories that guide the research approach and methodology."},
			{"Related Literature Review", "Comprehensive analysis of previous studies, publications, and research findings."},
			{"Conceptual Framework", "Visual and textual representation of the relationships between key variables and concepts."},
			{"Research Gap Analysis", "Identification and analysis of gaps in existing knowledge that justify the current study."},
			{"Literature Synthesis", "Integration of findings from multiple sources to build a cohesive understanding."},
		},
		ExpectedPages: "25-40 pages",
		KeyComponents: []string{"Theory application", "Critical analysis", "Knowledge synthesis", "Research positioning"},
	},
	{
		Titles: []string{
			"Research Methodology and Design",
			"Methods and Procedures",
			"Research Approach and Methodology",
		},
		Objectives: []string{
			"Describe the research design and approach",
			"Explain data collection procedures and instruments",
			"Detail sampling methodology and population",
			"Outline data analysis techniques and validation methods",
		},
		Sections: []SectionTemplate{
			{"Research Design", "Describes the overall strategy and framework chosen to integrate different components of the study."},
			{"Population and Sampling", "Defines the target population and explains the sampling methodology and size determination."},
			{"Data Collection Instruments", "Details the tools, surveys, interviews, or tests used to gather research data."},
			{"Data Collection Procedures", "Step-by-step explanation of how data will be collected, including timeline and protocols."},
			{"Data Analysis Methods", "Describes statistical or qualitative analysis techniques to be employed."},
			{"Validity and Reliability", "Measures taken to ensure the accuracy, consistency, and credibility of research findings."},
		},
		ExpectedPages: "20-30 pages",
		KeyComponents: []string{"Research design", "Data collection", "Analysis framework", "Quality assurance"},
	},
	{
		Titles: []string{
			"Results and Discussion",
			"Data Analysis and Findings",
			"Research Findings and Analysis",
		},
		Objectives: []string{
			"Present comprehensive analysis of collected data",
			"Interpret findings in relation to research objectives",
			"Discuss implications of results for theory and practice",
			"Compare findings with existing literature and frameworks",
		},
		Sections: []SectionTemplate{
			{"Descriptive Analysis", "Presentation of basic statistical information and demographic characteristics of the data."},
			{"Inferential Analysis", "Advanced statistical analysis including hypothesis testing and relationship examination."},
			{"Findings Interpretation", "Detailed explanation of what the results mean in the context of the research questions."},
			{"Discussion of Results", "Critical analysis of findings in relation to existing literature and theoretical framework."},
			{"Implications for Practice", "Practical applications and recommendations based on the research findings."},
		},
		ExpectedPages: "30-50 pages",
		KeyComponents: []string{"Data presentation", "Statistical analysis", "Result interpretation", "Discussion synthesis"},
	},
	{
		Titles: []string{
			"Conclusions and Recommendations",
			"Summary, Conclusions and Future Directions",
			"Final Conclusions and Implications",
		},
		Objectives: []string{
			"Summarize key findings and their significance",
			"Draw conclusions based on research evidence",
			"Provide actionable recommendations for stakeholders",
			"Suggest directions for future research and development",
		},
		Sections: []SectionTemplate{
			{"Summary of Findings", "Concise overview of the main results and discoveries from the research investigation."},
			{"Conclusions", "Definitive statements about what the research has demonstrated or proven."},
			{"Practical Recommendations", "Specific, actionable suggestions for practitioners, organizations, or policymakers."},
			{"Theoretical Contributions", "Explanation of how the research advances knowledge in the field."},
			{"Limitations and Future Research", "Acknowledgment of study constraints and suggestions for future investigations."},
			{"Final Reflections", "Personal insights and broader implications of the research journey and outcomes."},
		},
		ExpectedPages: "15-25 pages",
		KeyComponents: []string{"Research synthesis", "Evidence-based conclusions", "Strategic recommendations", "Future directions"},
	},
}

// ChapterCount 学术文档的固定章节数
const ChapterCount = 5

// Template 返回章节 n (1..5) 的模板。
// 越界的 n 属于调用方编程错误，不是可恢复的运行时条件。
func Template(n int) ChapterTemplate {
	if n < 1 || n > ChapterCount {
		panic(fmt.Sprintf("generation: chapter number %d out of range 1..%d", n, ChapterCount))
	}
	return chapterTemplates[n-1]
}
