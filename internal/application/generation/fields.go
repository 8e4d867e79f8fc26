// Package generation 实现模板驱动的毕业设计文档生成引擎
package generation

// FieldTemplate 学科短语库：标题前缀、标题语境后缀与方法论侧重短语
type FieldTemplate struct {
	Prefixes         []string
	Contexts         []string
	MethodologyFocus []string
}

// fieldTemplates 固定学科短语库，进程初始化后只读
var fieldTemplates = map[string]FieldTemplate{
	"computer-science": {
		Prefixes: []string{
			"Development of an Intelligent",
			"Implementation of Advanced",
			"Design and Analysis of Scalable",
			"Machine Learning Approach to",
			"AI-Powered Solution for",
		},
		Contexts: []string{" System", " Framework", " Algorithm", " Platform", " Architecture"},
		MethodologyFocus: []string{
			"Agile Development",
			"Machine Learning Models",
			"System Architecture Design",
			"Performance Testing",
			"User Interface Design",
		},
	},
	"business": {
		Prefixes: []string{
			"Strategic Digital Transformation of",
			"Comprehensive Market Analysis of",
			"Performance Optimization in",
			"Sustainable Business Model for",
			"Data-Driven Decision Making in",
		},
		Contexts: []string{" Organizations", " Industries", " Markets", " Enterprises", " Supply Chains"},
		MethodologyFocus: []string{
			"Statistical Analysis",
			"Survey Research",
			"Financial Modeling",
			"Market Research",
			"Case Study Analysis",
		},
	},
	"education": {
		Prefixes: []string{
			"Innovative Pedagogical Approach to",
			"Assessment and Evaluation of",
			"Technology Integration in",
			"Personalized Learning Solutions for",
			"Evidence-Based Teaching Methods in",
		},
		Contexts: []string{
			" Learning Environments",
			" Educational Systems",
			" Curriculum Development",
			" Student Achievement",
			" Online Education",
		},
		MethodologyFocus: []string{
			"Educational Research Design",
			"Learning Assessment",
			"Curriculum Analysis",
			"Student Performance Metrics",
			"Qualitative Interviews",
		},
	},
	"psychology": {
		Prefixes: []string{
			"Cognitive Behavioral Analysis of",
			"Neuropsychological Investigation of",
			"Social Psychology Study on",
			"Developmental Assessment of",
			"Therapeutic Intervention for",
		},
		Contexts: []string{
			" Human Behavior",
			" Mental Health",
			" Social Interactions",
			" Cognitive Processes",
			" Emotional Regulation",
		},
		MethodologyFocus: []string{
			"Experimental Design",
			"Psychological Testing",
			"Statistical Analysis",
			"Clinical Interviews",
			"Behavioral Observation",
		},
	},
	"engineering": {
		Prefixes: []string{
			"Innovative Engineering Solution for",
			"Sustainable Design and Development of",
			"Performance Optimization of",
			"Smart Technology Integration in",
			"Advanced Materials Application in",
		},
		Contexts: []string{
			" Systems",
			" Infrastructure",
			" Manufacturing Processes",
			" Renewable Energy",
			" Automation",
		},
		MethodologyFocus: []string{
			"CAD Modeling",
			"Simulation Analysis",
			"Prototype Testing",
			"Material Analysis",
			"Performance Benchmarking",
		},
	},
	"healthcare": {
		Prefixes: []string{
			"Clinical Effectiveness Study of",
			"Evidence-Based Healthcare Intervention for",
			"Population Health Analysis of",
			"Medical Technology Assessment of",
			"Patient-Centered Care Model for",
		},
		Contexts: []string{
			" Treatment Protocols",
			" Healthcare Systems",
			" Patient Outcomes",
			" Medical Devices",
			" Public Health",
		},
		MethodologyFocus: []string{
			"Clinical Trials",
			"Statistical Analysis",
			"Patient Surveys",
			"Medical Records Analysis",
			"Health Outcome Measurement",
		},
	},
}

// genericTemplate 未知学科（含 other、空值）的中性短语库
var genericTemplate = FieldTemplate{
	Prefixes: []string{
		"Comprehensive Analysis of",
		"Investigation into",
		"Advanced Study on",
		"Strategic Approach to",
		"Innovative Solutions for",
	},
	Contexts: []string{""},
	MethodologyFocus: []string{
		"Systematic Analysis",
		"Survey Research",
		"Case Study Analysis",
		"Comparative Evaluation",
		"Document Review",
	},
}

// LookupField 返回学科短语库；未知键（含空串）返回中性兜底库。
// 返回值视为只读，调用方不得修改其中的切片。
func LookupField(fieldKey string) FieldTemplate {
	if tpl, ok := fieldTemplates[fieldKey]; ok {
		return tpl
	}
	return genericTemplate
}

// IsKnownField 判断学科键是否有专属短语库
func IsKnownField(fieldKey string) bool {
	_, ok := fieldTemplates[fieldKey]
	return ok
}
