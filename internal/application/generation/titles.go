package generation

import (
	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// maxTitleOptions 每次生成的标题候选上限
const maxTitleOptions = 5

// maxFillAttempts 随机补位去重的重试上限，保证组合不足时仍能终止
const maxFillAttempts = 20

// researchTypeClauses 研究方法 -> 标题描述从句
var researchTypeClauses = map[entity.ResearchType]string{
	entity.ResearchQuantitative: ": A Quantitative Analysis",
	entity.ResearchQualitative:  ": A Qualitative Investigation",
	entity.ResearchMixed:        ": A Mixed-Methods Approach",
	entity.ResearchExperimental: ": An Experimental Study",
	entity.ResearchCaseStudy:    ": A Case Study Analysis",
	entity.ResearchTheoretical:  ": A Theoretical Framework",
}

// GenerateTitleOptions 生成至多 5 个互不相同的候选主标题。
// 前缀按序与 index mod len(contexts) 选出的语境配对，保证确定性覆盖；
// 偶数位前缀在提供研究方法时追加描述从句；组合不足 5 个时随机补位。
func (e *Engine) GenerateTitleOptions(input entity.FormInput) []string {
	tpl := LookupField(input.Field)
	titles := make([]string, 0, maxTitleOptions)

	for i, prefix := range tpl.Prefixes {
		if len(titles) >= maxTitleOptions {
			break
		}
		context := tpl.Contexts[i%len(tpl.Contexts)]
		title := prefix + " " + input.Topic + context
		if input.ResearchType != "" && i%2 == 0 {
			if clause, ok := researchTypeClauses[input.ResearchType]; ok {
				title += clause
			}
		}
		if !containsString(titles, title) {
			titles = append(titles, title)
		}
	}

	for attempts := 0; len(titles) < maxTitleOptions && attempts < maxFillAttempts; attempts++ {
		prefix := tpl.Prefixes[e.pick(len(tpl.Prefixes))]
		context := tpl.Contexts[e.pick(len(tpl.Contexts))]
		title := prefix + " " + input.Topic + context
		if !containsString(titles, title) {
			titles = append(titles, title)
		}
	}

	return titles
}

// synthesizeTitle 直接合成单个主标题（未经候选挑选流程的一步式生成）
func (e *Engine) synthesizeTitle(input entity.FormInput) string {
	tpl := LookupField(input.Field)
	i := e.pick(len(tpl.Prefixes))
	title := tpl.Prefixes[i] + " " + input.Topic + tpl.Contexts[i%len(tpl.Contexts)]
	if input.ResearchType != "" && i%2 == 0 {
		if clause, ok := researchTypeClauses[input.ResearchType]; ok {
			title += clause
		}
	}
	return title
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
