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

package dao

import "github.com/ecodeclub/ekit/sqlx"

type AnalysisRecord struct {
	ID  int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Tid string `gorm:"type:varchar(128);uniqueIndex"`
	// 对应的岗位 id，临时分析（还没入库的草稿）为 0
	JobID          int64                     `gorm:"column:job_id;index"`
	Engine         string                    `gorm:"type:varchar(64)"`
	TrustScore     int                       `gorm:"column:trust_score"`
	Fraudulent     bool                      `gorm:"column:fraudulent"`
	FlaggedContent sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Recommendation string                    `gorm:"type:varchar(512)"`
	Ctime          int64
	Utime          int64
}
