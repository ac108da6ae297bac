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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobhub/internal/fraud"
	fraudmocks "github.com/ecodeclub/jobhub/internal/fraud/mocks"
	"github.com/ecodeclub/jobhub/internal/job"
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobhub/internal/job/internal/web"
	"github.com/ecodeclub/jobhub/internal/test"
	testioc "github.com/ecodeclub/jobhub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = int64(2061)

// mockAnalysis 描述里带 registration fee 就当成欺诈岗位，
// 其余一律满分，方便断言
func mockAnalysis(profile fraud.JobProfile) fraud.AnalysisResult {
	if strings.Contains(profile.Description, "registration fee") {
		return fraud.AnalysisResult{
			Fraudulent:     true,
			TrustScore:     24,
			FlaggedContent: []string{"Suspicious keywords: registration fee"},
			Recommendation: "This job posting is highly likely to be fraudulent based on multiple warning signs. It should be rejected to protect job seekers.",
		}
	}
	return fraud.AnalysisResult{
		TrustScore:     100,
		Recommendation: "This job posting appears legitimate with no significant fraud indicators.",
	}
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.JobDAO
	rdb    ecache.Cache
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	testmq := testioc.InitMQ()
	rdb := testioc.InitCache()
	ctrl := gomock.NewController(s.T())
	fraudSvc := fraudmocks.NewMockService(ctrl)
	fraudSvc.EXPECT().Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profile fraud.JobProfile) (fraud.AnalysisResult, error) {
			return mockAnalysis(profile), nil
		}).AnyTimes()
	mou, err := job.InitModule(db, rdb, testmq, &fraud.Module{Svc: fraudSvc})
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
			Data: map[string]string{
				"nickname": "老王",
				"verified": "true",
			},
		}))
	})
	mou.Hdl.PublicRoutes(server.Engine)
	mou.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = db
	s.dao = dao.NewJobDAO(db)
	s.rdb = rdb
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `jobs`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSubmit() {
	testCases := []struct {
		name     string
		req      web.SubmitReq
		wantCode int
		wantResp test.Result[web.Job]
		after    func(t *testing.T)
	}{
		{
			name: "提交合法岗位",
			req: web.SubmitReq{
				Job: web.Job{
					Title:        "Go研发工程师",
					Company:      "字节跳动",
					Location:     "北京",
					Description:  "负责后端服务的设计与开发，维护高并发的在线系统",
					Requirements: []string{"三年以上Go经验", "熟悉MySQL"},
					Salary:       "30k-50k",
				},
			},
			wantCode: 200,
			wantResp: test.Result[web.Job]{
				Data: web.Job{
					ID:                1,
					Title:             "Go研发工程师",
					Company:           "字节跳动",
					Location:          "北京",
					Description:       "负责后端服务的设计与开发，维护高并发的在线系统",
					Requirements:      []string{"三年以上Go经验", "熟悉MySQL"},
					Salary:            "30k-50k",
					RecruiterName:     "老王",
					RecruiterVerified: true,
					Status:            domain.JobStatusPending.ToUint8(),
					TrustScore:        100,
					Recommendation:    "This job posting appears legitimate with no significant fraud indicators.",
				},
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 1)
				require.NoError(t, err)
				s.assertJob(t, dao.Job{
					Title:       "Go研发工程师",
					Company:     "字节跳动",
					Location:    "北京",
					Description: "负责后端服务的设计与开发，维护高并发的在线系统",
					Requirements: sqlx.JsonColumn[[]string]{
						Valid: true,
						Val:   []string{"三年以上Go经验", "熟悉MySQL"},
					},
					Salary:            "30k-50k",
					RecruiterID:       uid,
					RecruiterName:     "老王",
					RecruiterVerified: true,
					Status:            domain.JobStatusPending.ToUint8(),
					TrustScore:        100,
					Recommendation:    "This job posting appears legitimate with no significant fraud indicators.",
				}, entity)
			},
		},
		{
			name: "提交可疑岗位照样入库等审核",
			req: web.SubmitReq{
				Job: web.Job{
					Title:       "Data Entry",
					Company:     "Global Corp",
					Description: "Easy money, just pay a small registration fee to get started",
					Salary:      "$500/day",
				},
			},
			wantCode: 200,
			wantResp: test.Result[web.Job]{
				Data: web.Job{
					ID:                1,
					Title:             "Data Entry",
					Company:           "Global Corp",
					Description:       "Easy money, just pay a small registration fee to get started",
					Salary:            "$500/day",
					RecruiterName:     "老王",
					RecruiterVerified: true,
					Status:            domain.JobStatusPending.ToUint8(),
					TrustScore:        24,
					Fraudulent:        true,
					FlaggedContent:    []string{"Suspicious keywords: registration fee"},
					Recommendation:    "This job posting is highly likely to be fraudulent based on multiple warning signs. It should be rejected to protect job seekers.",
				},
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, domain.JobStatusPending.ToUint8(), entity.Status)
				assert.Equal(t, 24, entity.TrustScore)
				assert.True(t, entity.Fraudulent)
				assert.Equal(t, []string{"Suspicious keywords: registration fee"}, entity.FlaggedContent.Val)
			},
		},
		{
			name: "缺少必填字段",
			req: web.SubmitReq{
				Job: web.Job{
					Company:     "字节跳动",
					Description: "负责后端服务的设计与开发",
				},
			},
			wantCode: 500,
			wantResp: test.Result[web.Job]{
				Code: 510003,
				Msg:  "岗位信息不完整",
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				count, err := s.dao.Count(ctx)
				require.NoError(t, err)
				assert.Equal(t, int64(0), count)
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/job/submit", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Job]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `jobs`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) TestPubList() {
	// 奇数岗位待审核，偶数岗位审核通过，求职者只能看到偶数的
	data := make([]dao.Job, 0, 10)
	for idx := 1; idx <= 10; idx++ {
		status := domain.JobStatusPending
		if idx%2 == 0 {
			status = domain.JobStatusApproved
		}
		data = append(data, dao.Job{
			ID:          int64(idx),
			Title:       fmt.Sprintf("岗位 %d", idx),
			Company:     fmt.Sprintf("公司 %d", idx),
			Description: fmt.Sprintf("描述 %d", idx),
			RecruiterID: uid,
			Status:      status.ToUint8(),
			TrustScore:  100,
			Utime:       123,
		})
	}
	err := s.db.Create(&data).Error
	require.NoError(s.T(), err)
	testCases := []struct {
		name     string
		req      web.Page
		wantCode int
		wantResp test.Result[web.JobListResp]
	}{
		{
			name: "第一页",
			req: web.Page{
				Limit:  2,
				Offset: 0,
			},
			wantCode: 200,
			wantResp: test.Result[web.JobListResp]{
				Data: web.JobListResp{
					List: []web.Job{
						{
							ID:          10,
							Title:       "岗位 10",
							Company:     "公司 10",
							Description: "描述 10",
							Status:      domain.JobStatusApproved.ToUint8(),
							TrustScore:  100,
							Utime:       123,
						},
						{
							ID:          8,
							Title:       "岗位 8",
							Company:     "公司 8",
							Description: "描述 8",
							Status:      domain.JobStatusApproved.ToUint8(),
							TrustScore:  100,
							Utime:       123,
						},
					},
				},
			},
		},
		{
			name: "最后一页",
			req: web.Page{
				Limit:  2,
				Offset: 4,
			},
			wantCode: 200,
			wantResp: test.Result[web.JobListResp]{
				Data: web.JobListResp{
					List: []web.Job{
						{
							ID:          2,
							Title:       "岗位 2",
							Company:     "公司 2",
							Description: "描述 2",
							Status:      domain.JobStatusApproved.ToUint8(),
							TrustScore:  100,
							Utime:       123,
						},
					},
				},
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/job/pub/list", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.JobListResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestPubDetail() {
	err := s.db.Create(&dao.Job{
		ID:          1,
		Title:       "Go研发工程师",
		Company:     "字节跳动",
		Location:    "北京",
		Description: "负责后端服务的设计与开发",
		Requirements: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   []string{"三年以上Go经验"},
		},
		Salary:      "30k-50k",
		RecruiterID: uid,
		Status:      domain.JobStatusApproved.ToUint8(),
		TrustScore:  100,
		Ctime:       123,
		Utime:       123,
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Create(&dao.Job{
		ID:          2,
		Title:       "待审核岗位",
		Company:     "某公司",
		Description: "还没审核通过",
		RecruiterID: uid,
		Status:      domain.JobStatusPending.ToUint8(),
	}).Error
	require.NoError(s.T(), err)

	testCases := []struct {
		name     string
		req      web.DetailReq
		wantCode int
		wantResp test.Result[web.Job]
	}{
		{
			name: "查看审核通过的岗位",
			req: web.DetailReq{
				ID: 1,
			},
			wantCode: 200,
			wantResp: test.Result[web.Job]{
				Data: web.Job{
					ID:           1,
					Title:        "Go研发工程师",
					Company:      "字节跳动",
					Location:     "北京",
					Description:  "负责后端服务的设计与开发",
					Requirements: []string{"三年以上Go经验"},
					Salary:       "30k-50k",
					Status:       domain.JobStatusApproved.ToUint8(),
					TrustScore:   100,
					Utime:        123,
				},
			},
		},
		{
			name: "待审核的岗位对求职者不可见",
			req: web.DetailReq{
				ID: 2,
			},
			wantCode: 500,
			wantResp: test.Result[web.Job]{
				Code: 510002,
				Msg:  "岗位不存在",
			},
		},
		{
			name: "岗位不存在",
			req: web.DetailReq{
				ID: 999,
			},
			wantCode: 500,
			wantResp: test.Result[web.Job]{
				Code: 510002,
				Msg:  "岗位不存在",
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/job/pub/detail", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Job]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
	// 查过详情之后应该回填缓存
	s.assertCachedJob(s.T(), domain.Job{
		ID:           1,
		Title:        "Go研发工程师",
		Company:      "字节跳动",
		Location:     "北京",
		Description:  "负责后端服务的设计与开发",
		Requirements: []string{"三年以上Go经验"},
		Salary:       "30k-50k",
		RecruiterID:  uid,
		Status:       domain.JobStatusApproved,
		TrustScore:   100,
		Ctime:        123,
		Utime:        123,
	})
}

func (s *HandlerTestSuite) TestMyList() {
	data := []dao.Job{
		{
			ID:          1,
			Title:       "我的岗位 1",
			Company:     "公司",
			Description: "描述",
			RecruiterID: uid,
			Status:      domain.JobStatusPending.ToUint8(),
			Utime:       123,
		},
		{
			ID:          2,
			Title:       "别人的岗位",
			Company:     "公司",
			Description: "描述",
			RecruiterID: uid + 1,
			Status:      domain.JobStatusApproved.ToUint8(),
			Utime:       123,
		},
		{
			ID:          3,
			Title:       "我的岗位 2",
			Company:     "公司",
			Description: "描述",
			RecruiterID: uid,
			Status:      domain.JobStatusRejected.ToUint8(),
			Utime:       123,
		},
	}
	err := s.db.Create(&data).Error
	require.NoError(s.T(), err)
	req, err := http.NewRequest(http.MethodPost,
		"/job/mine", iox.NewJSONReader(web.Page{Limit: 10, Offset: 0}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.JobListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), test.Result[web.JobListResp]{
		Data: web.JobListResp{
			List: []web.Job{
				{
					ID:          3,
					Title:       "我的岗位 2",
					Company:     "公司",
					Description: "描述",
					Status:      domain.JobStatusRejected.ToUint8(),
					Utime:       123,
				},
				{
					ID:          1,
					Title:       "我的岗位 1",
					Company:     "公司",
					Description: "描述",
					Status:      domain.JobStatusPending.ToUint8(),
					Utime:       123,
				},
			},
		},
	}, recorder.MustScan())
}

func (s *HandlerTestSuite) TestReport() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.ReportReq
		wantCode int
		after    func(t *testing.T)
	}{
		{
			name: "第一次举报只累计不升级",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          1,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					RecruiterID: uid,
					Status:      domain.JobStatusApproved.ToUint8(),
				}).Error
				require.NoError(t, err)
			},
			req: web.ReportReq{
				ID:     1,
				Reason: "fake company",
			},
			wantCode: 200,
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, 1, entity.ReportCount)
				assert.Equal(t, []string{"fake company"}, entity.ReportReasons.Val)
				assert.Equal(t, domain.JobStatusApproved.ToUint8(), entity.Status)
			},
		},
		{
			name: "第三次举报升级为被举报",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          2,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					RecruiterID: uid,
					Status:      domain.JobStatusApproved.ToUint8(),
					ReportCount: 2,
					ReportReasons: sqlx.JsonColumn[[]string]{
						Valid: true,
						Val:   []string{"fake company"},
					},
				}).Error
				require.NoError(t, err)
				// 先把缓存焐热，升级之后必须失效
				req, err := http.NewRequest(http.MethodPost,
					"/job/pub/detail", iox.NewJSONReader(web.DetailReq{ID: 2}))
				req.Header.Set("content-type", "application/json")
				require.NoError(t, err)
				recorder := test.NewJSONResponseRecorder[web.Job]()
				s.server.ServeHTTP(recorder, req)
				require.Equal(t, 200, recorder.Code)
			},
			req: web.ReportReq{
				ID:     2,
				Reason: "asks for money upfront",
			},
			wantCode: 200,
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 2)
				require.NoError(t, err)
				assert.Equal(t, 3, entity.ReportCount)
				assert.Equal(t, []string{"fake company", "asks for money upfront"}, entity.ReportReasons.Val)
				assert.Equal(t, domain.JobStatusReported.ToUint8(), entity.Status)
				val := s.rdb.Get(ctx, "job:publish:2")
				assert.True(t, val.KeyNotFound())
			},
		},
		{
			name: "重复理由去重",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          3,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					RecruiterID: uid,
					Status:      domain.JobStatusApproved.ToUint8(),
					ReportCount: 1,
					ReportReasons: sqlx.JsonColumn[[]string]{
						Valid: true,
						Val:   []string{"fake company"},
					},
				}).Error
				require.NoError(t, err)
			},
			req: web.ReportReq{
				ID:     3,
				Reason: "fake company",
			},
			wantCode: 200,
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 3)
				require.NoError(t, err)
				assert.Equal(t, 2, entity.ReportCount)
				assert.Equal(t, []string{"fake company"}, entity.ReportReasons.Val)
			},
		},
		{
			name: "已拒绝的岗位不会被举报翻回来",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          4,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					RecruiterID: uid,
					Status:      domain.JobStatusRejected.ToUint8(),
					ReportCount: 2,
				}).Error
				require.NoError(t, err)
			},
			req: web.ReportReq{
				ID:     4,
				Reason: "scam",
			},
			wantCode: 200,
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 4)
				require.NoError(t, err)
				assert.Equal(t, 3, entity.ReportCount)
				assert.Equal(t, domain.JobStatusRejected.ToUint8(), entity.Status)
			},
		},
		{
			name:   "举报不存在的岗位",
			before: func(t *testing.T) {},
			req: web.ReportReq{
				ID:     999,
				Reason: "scam",
			},
			wantCode: 500,
			after:    func(t *testing.T) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/job/report", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Job]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `jobs`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) assertCachedJob(t *testing.T, want domain.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	key := fmt.Sprintf("job:publish:%d", want.ID)
	cachedVal := s.rdb.Get(ctx, key)
	require.NoError(t, cachedVal.Err)
	var cached domain.Job
	err := json.Unmarshal([]byte(cachedVal.Val.(string)), &cached)
	require.NoError(t, err)
	assert.Equal(t, want, cached)
	_, err = s.rdb.Delete(context.Background(), key)
	require.NoError(t, err)
}

// assertJob 不比较 id 和时间
func (s *HandlerTestSuite) assertJob(t *testing.T, expect dao.Job, actual dao.Job) {
	assert.True(t, actual.ID > 0)
	assert.True(t, actual.Ctime > 0)
	assert.True(t, actual.Utime > 0)
	actual.ID = 0
	actual.Ctime = 0
	actual.Utime = 0
	assert.Equal(t, expect, actual)
}

func TestJobHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
