// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rule

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/jobhub/internal/fraud/internal/domain"
)

// 扣分表。关键词和正则按命中次数累计，其余每类信号只扣一次。
const (
	keywordPenalty     = 8
	patternPenalty     = 12
	emailDomainPenalty = 25
	salaryPenalty      = 20
	shortDescPenalty   = 15
	capsPenalty        = 12
	contactBaitPenalty = 30
)

// fraudThreshold 欺诈判定阈值，写死的，不允许配置。
// 分数严格小于 50 判欺诈，等于 50 不算。
const fraudThreshold = 50

const (
	minDescriptionLen = 100
	maxUpperCaseRatio = 0.30
	// 描述太短的话大写占比没有统计意义
	minLenForCapsCheck = 50
)

// Engine 基于规则的打分引擎。无状态，所有方法都是纯函数，
// 同样的输入和同样的规则库永远给出同样的结果。
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return "rule"
}

func (e *Engine) Score(_ context.Context, profile domain.JobProfile) (domain.AnalysisResult, error) {
	return e.score(e.detectSignals(profile)), nil
}

// signals 一次检测里收集到的所有信号。
// 各项检查彼此独立，不短路，一趟全部跑完。
type signals struct {
	keywords    []string
	patternHits int
	emailDomain bool
	salaryFlags []string
	shortDesc   bool
	descLen     int
	excessCaps  bool
	contactBait bool
}

func (e *Engine) detectSignals(p domain.JobProfile) signals {
	text := strings.ToLower(p.CombinedText())
	var sig signals

	// 关键词按规则库顺序收集，不按出现顺序
	for _, kw := range fraudKeywords {
		if strings.Contains(text, kw) {
			sig.keywords = append(sig.keywords, kw)
		}
	}

	for _, pattern := range fraudPatterns {
		if pattern.MatchString(text) {
			sig.patternHits++
		}
	}

	company := strings.ToLower(p.Company)
	for _, d := range personalEmailDomains {
		if strings.Contains(company, d) {
			sig.emailDomain = true
			break
		}
	}

	// 薪资形态单独检查，flag 里带上原文
	if p.Salary != "" {
		if dailySalaryExpr.MatchString(p.Salary) {
			sig.salaryFlags = append(sig.salaryFlags,
				"Unusually high daily/weekly salary: "+p.Salary)
		}
		if lakhSalaryExpr.MatchString(p.Salary) {
			sig.salaryFlags = append(sig.salaryFlags,
				"Unusually high salary in lakhs: "+p.Salary)
		}
		if croreSalaryExpr.MatchString(p.Salary) {
			sig.salaryFlags = append(sig.salaryFlags,
				"Unrealistic salary in crores: "+p.Salary)
		}
	}

	if p.Description != "" {
		sig.descLen = utf8.RuneCountInString(p.Description)
		sig.shortDesc = sig.descLen < minDescriptionLen
		upperCnt := len(upperCaseExpr.FindAllString(p.Description, -1))
		ratio := float64(upperCnt) / float64(sig.descLen)
		sig.excessCaps = ratio > maxUpperCaseRatio && sig.descLen > minLenForCapsCheck
	}

	// 引导求职者把简历投到个人邮箱，是这个领域里最强的欺诈信号
	if strings.Contains(text, "send resume to") &&
		(strings.Contains(text, "gmail") || strings.Contains(text, "yahoo")) {
		sig.contactBait = true
	}
	return sig
}

// score 把信号折算成信任分。固定的 flag 顺序：
// 关键词、正则、公司域名、薪资、描述长度、大写占比、个人邮箱引导。
func (e *Engine) score(sig signals) domain.AnalysisResult {
	flagged := make([]string, 0, 8)
	penalty := 0

	if len(sig.keywords) > 0 {
		flagged = append(flagged, "Suspicious keywords: "+strings.Join(sig.keywords, ", "))
		penalty += len(sig.keywords) * keywordPenalty
	}
	if sig.patternHits > 0 {
		// 只提示检测到了可疑模式，不逐条列出来，免得淹没审核人员
		flagged = append(flagged, "Suspicious patterns detected in job description")
		penalty += sig.patternHits * patternPenalty
	}
	if sig.emailDomain {
		flagged = append(flagged, "Company name contains personal email domain")
		penalty += emailDomainPenalty
	}
	if len(sig.salaryFlags) > 0 {
		// 可能有多条薪资 flag，但只扣一次
		flagged = append(flagged, sig.salaryFlags...)
		penalty += salaryPenalty
	}
	if sig.shortDesc {
		flagged = append(flagged,
			fmt.Sprintf("Job description is suspiciously short (%d characters)", sig.descLen))
		penalty += shortDescPenalty
	}
	if sig.excessCaps {
		flagged = append(flagged, "Excessive use of capital letters in job description")
		penalty += capsPenalty
	}
	if sig.contactBait {
		flagged = append(flagged, "Requests to send resume to personal email addresses")
		penalty += contactBaitPenalty
	}

	score := 100 - penalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return domain.AnalysisResult{
		Fraudulent:     score < fraudThreshold,
		TrustScore:     score,
		FlaggedContent: flagged,
		Recommendation: recommendation(score),
	}
}

// recommendation 分数段建议，下闭上开。
func recommendation(score int) string {
	switch {
	case score >= 80:
		return "This job posting appears legitimate with no significant fraud indicators."
	case score >= 65:
		return "This job posting appears mostly legitimate but has a few minor suspicious elements. Proceed with standard caution."
	case score >= 50:
		return "This job posting has some suspicious elements common in job scams but may be legitimate. Verify company details before proceeding."
	case score >= 30:
		return "This job posting has multiple fraud indicators common in job scams. We recommend additional verification before approval."
	default:
		return "This job posting is highly likely to be fraudulent based on multiple warning signs. It should be rejected to protect job seekers."
	}
}
