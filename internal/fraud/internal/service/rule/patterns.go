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

import "regexp"

// 这里的关键词和正则是纯数据。新增一个欺诈信号只需要往列表里追加，
// 不需要改引擎的控制流。

// fraudKeywords 命中即扣分的关键词，全部小写。
var fraudKeywords = []string{
	// 通用的骗局话术
	"urgent", "make money", "get rich", "quick cash", "easy money", "work from home",
	"no experience", "immediate start", "credit card", "registration fee", "payment required",
	"secret", "system", "guaranteed", "unlimited", "$$$", "₹₹₹", "cash", "money", "get paid today",
	"immediate payment", "pyramid", "investment opportunity", "multi-level", "mlm",

	// 印度市场常见的骗局话术
	"lakhs per month", "crores", "earn in dollars", "foreign clients", "paisa", "instant money",
	"pan card needed", "aadhar required", "upfront fees", "training fees", "consultancy charges",
	"overseas jobs", "one-time investment", "agent fees", "direct joining", "cash on joining",
}

// fraudPatterns 捕捉结构而不是具体措辞的正则。
var fraudPatterns = []*regexp.Regexp{
	// 不切实际的日薪/周薪
	regexp.MustCompile(`(?i)₹\d+k?/(?:day|week|hour)`),
	regexp.MustCompile(`(?i)₹\d{4,}/(?:day|week)`),
	// 要求提前付款
	regexp.MustCompile(`(?i)pay.*(?:upfront|advance)`),
	// 报名费
	regexp.MustCompile(`(?i)register.*fee`),
	// 没有理由的紧迫感
	regexp.MustCompile(`(?i)\b(?:urgent|immediate)\b`),
	regexp.MustCompile(`(?i)no experience needed`),
	regexp.MustCompile(`(?i)(?:credit card|payment).*required`),
	// 培训费
	regexp.MustCompile(`(?i)(?:training|starter) (?:kit|package|fee)`),
	regexp.MustCompile(`(?i)work.*from.*home`),
	// 以 lakh/crore 计的离谱薪资
	regexp.MustCompile(`(?i)\d+ lakhs?`),
	regexp.MustCompile(`(?i)\d+ crores?`),
	// 可疑的证件上传要求
	regexp.MustCompile(`(?i)aadhar.*required`),
	regexp.MustCompile(`(?i)pan.*card.*upload`),
	// 免面试直接入职
	regexp.MustCompile(`(?i)direct.*joining`),
	// 海外安置的诱饵
	regexp.MustCompile(`(?i)foreign.*placement`),
	regexp.MustCompile(`(?i)(?:dubai|gulf|abroad).*job`),
	regexp.MustCompile(`(?i)overnight.*(?:payment|money)`),
	// 骗局常用的转账渠道
	regexp.MustCompile(`(?i)(?:western union|moneygram)`),
	// 纯佣金岗位
	regexp.MustCompile(`(?i)commission.*based`),
}

// personalEmailDomains 公司名里出现这些域名基本就是个人邮箱冒充公司。
var personalEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
	"rediffmail.com", "ymail.com", "protonmail.com",
}

// 薪资字段单独做形态检查用的正则
var (
	dailySalaryExpr = regexp.MustCompile(`(?i)₹\d{3,}k?\+?\s*/\s*(?:day|week)`)
	lakhSalaryExpr  = regexp.MustCompile(`(?i)\d{2,}\s*lakhs?`)
	croreSalaryExpr = regexp.MustCompile(`(?i)\d+\s*crores?`)
)

var upperCaseExpr = regexp.MustCompile(`[A-Z]`)
