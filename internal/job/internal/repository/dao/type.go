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

type Job struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Title        string `gorm:"type:varchar(512)"`
	Company      string `gorm:"type:varchar(512)"`
	Location     string `gorm:"type:varchar(512)"`
	Description  string `gorm:"type:text"`
	Requirements sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Salary       string                    `gorm:"type:varchar(128)"`

	RecruiterID       int64  `gorm:"column:recruiter_id;index:idx_recruiter_id"`
	RecruiterName     string `gorm:"type:varchar(256)"`
	RecruiterVerified bool

	Status uint8 `gorm:"type:tinyint(3);index:idx_status;comment:0-未知 1-待审核 2-通过 3-拒绝 4-被举报"`

	// 最近一次风控分析结果的快照
	TrustScore     int
	Fraudulent     bool
	FlaggedContent sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Recommendation string                    `gorm:"type:varchar(512)"`

	ReportCount   int
	ReportReasons sqlx.JsonColumn[[]string] `gorm:"type:text"`

	Ctime int64 `gorm:"column:ctime"`
	Utime int64 `gorm:"column:utime"`
}
