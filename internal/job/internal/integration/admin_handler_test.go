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
	"net/http"
	"testing"
	"time"

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

type AdminHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.JobDAO
}

func (s *AdminHandlerTestSuite) SetupSuite() {
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
				"admin": "true",
			},
		}))
	})
	mou.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = db
	s.dao = dao.NewJobDAO(db)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `jobs`").Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) TestList() {
	// 待审核的排前面，同状态的新岗位排前面
	data := []dao.Job{
		{ID: 1, Title: "已通过", Company: "公司", Description: "描述", Status: domain.JobStatusApproved.ToUint8(), Utime: 123},
		{ID: 2, Title: "待审核 1", Company: "公司", Description: "描述", Status: domain.JobStatusPending.ToUint8(), Utime: 123},
		{ID: 3, Title: "待审核 2", Company: "公司", Description: "描述", Status: domain.JobStatusPending.ToUint8(), Utime: 123},
		{ID: 4, Title: "被举报", Company: "公司", Description: "描述", Status: domain.JobStatusReported.ToUint8(), ReportCount: 3, Utime: 123},
	}
	err := s.db.Create(&data).Error
	require.NoError(s.T(), err)
	req, err := http.NewRequest(http.MethodPost,
		"/job/list", iox.NewJSONReader(web.Page{Limit: 10, Offset: 0}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.JobListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), test.Result[web.JobListResp]{
		Data: web.JobListResp{
			Total: 4,
			List: []web.Job{
				{ID: 3, Title: "待审核 2", Company: "公司", Description: "描述", Status: domain.JobStatusPending.ToUint8(), Utime: 123},
				{ID: 2, Title: "待审核 1", Company: "公司", Description: "描述", Status: domain.JobStatusPending.ToUint8(), Utime: 123},
				{ID: 1, Title: "已通过", Company: "公司", Description: "描述", Status: domain.JobStatusApproved.ToUint8(), Utime: 123},
				{ID: 4, Title: "被举报", Company: "公司", Description: "描述", Status: domain.JobStatusReported.ToUint8(), ReportCount: 3, Utime: 123},
			},
		},
	}, recorder.MustScan())
}

func (s *AdminHandlerTestSuite) TestListByStatus() {
	data := []dao.Job{
		{ID: 1, Title: "待审核", Company: "公司", Description: "描述", Status: domain.JobStatusPending.ToUint8(), Utime: 123},
		{ID: 2, Title: "已通过", Company: "公司", Description: "描述", Status: domain.JobStatusApproved.ToUint8(), Utime: 123},
		{ID: 3, Title: "被举报", Company: "公司", Description: "描述", Status: domain.JobStatusReported.ToUint8(), ReportCount: 3, Utime: 123},
	}
	err := s.db.Create(&data).Error
	require.NoError(s.T(), err)
	req, err := http.NewRequest(http.MethodPost,
		"/job/status/list", iox.NewJSONReader(web.StatusPage{
			Status: domain.JobStatusReported.ToUint8(),
			Limit:  10,
			Offset: 0,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.JobListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), test.Result[web.JobListResp]{
		Data: web.JobListResp{
			List: []web.Job{
				{ID: 3, Title: "被举报", Company: "公司", Description: "描述", Status: domain.JobStatusReported.ToUint8(), ReportCount: 3, Utime: 123},
			},
		},
	}, recorder.MustScan())
}

func (s *AdminHandlerTestSuite) TestDetail() {
	err := s.db.Create(&dao.Job{
		ID:          1,
		Title:       "岗位",
		Company:     "公司",
		Description: "描述",
		RecruiterID: uid,
		Status:      domain.JobStatusReported.ToUint8(),
		TrustScore:  61,
		FlaggedContent: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   []string{"Contains suspicious email domain"},
		},
		Recommendation: "This job posting appears mostly legitimate but has a few minor suspicious elements. Proceed with standard caution.",
		ReportCount:    3,
		ReportReasons: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   []string{"fake company", "asks for money upfront"},
		},
		Utime: 123,
	}).Error
	require.NoError(s.T(), err)
	testCases := []struct {
		name     string
		req      web.DetailReq
		wantCode int
		wantResp test.Result[web.Job]
	}{
		{
			name:     "管理端能看到完整的举报信息",
			req:      web.DetailReq{ID: 1},
			wantCode: 200,
			wantResp: test.Result[web.Job]{
				Data: web.Job{
					ID:             1,
					Title:          "岗位",
					Company:        "公司",
					Description:    "描述",
					Status:         domain.JobStatusReported.ToUint8(),
					TrustScore:     61,
					FlaggedContent: []string{"Contains suspicious email domain"},
					Recommendation: "This job posting appears mostly legitimate but has a few minor suspicious elements. Proceed with standard caution.",
					ReportCount:    3,
					ReportReasons:  []string{"fake company", "asks for money upfront"},
					Utime:          123,
				},
			},
		},
		{
			name:     "岗位不存在",
			req:      web.DetailReq{ID: 999},
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
				"/job/detail", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Job]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *AdminHandlerTestSuite) TestPendingCount() {
	data := []dao.Job{
		{ID: 1, Title: "岗位", Company: "公司", Description: "描述", Status: domain.JobStatusPending.ToUint8()},
		{ID: 2, Title: "岗位", Company: "公司", Description: "描述", Status: domain.JobStatusPending.ToUint8()},
		{ID: 3, Title: "岗位", Company: "公司", Description: "描述", Status: domain.JobStatusApproved.ToUint8()},
		{ID: 4, Title: "岗位", Company: "公司", Description: "描述", Status: domain.JobStatusPending.ToUint8()},
		{ID: 5, Title: "岗位", Company: "公司", Description: "描述", Status: domain.JobStatusReported.ToUint8()},
	}
	err := s.db.Create(&data).Error
	require.NoError(s.T(), err)
	req, err := http.NewRequest(http.MethodPost,
		"/job/pending/count", iox.NewJSONReader(nil))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), int64(3), recorder.MustScan().Data)
}

func (s *AdminHandlerTestSuite) TestApprove() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.DetailReq
		wantCode int
		wantResp test.Result[any]
		after    func(t *testing.T)
	}{
		{
			name: "通过待审核岗位",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          1,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					Status:      domain.JobStatusPending.ToUint8(),
				}).Error
				require.NoError(t, err)
			},
			req:      web.DetailReq{ID: 1},
			wantCode: 200,
			wantResp: test.Result[any]{},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, domain.JobStatusApproved.ToUint8(), entity.Status)
			},
		},
		{
			name: "通过被举报岗位",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          2,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					Status:      domain.JobStatusReported.ToUint8(),
					ReportCount: 3,
				}).Error
				require.NoError(t, err)
			},
			req:      web.DetailReq{ID: 2},
			wantCode: 200,
			wantResp: test.Result[any]{},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 2)
				require.NoError(t, err)
				assert.Equal(t, domain.JobStatusApproved.ToUint8(), entity.Status)
			},
		},
		{
			name: "重复审核",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          3,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					Status:      domain.JobStatusApproved.ToUint8(),
				}).Error
				require.NoError(t, err)
			},
			req:      web.DetailReq{ID: 3},
			wantCode: 500,
			wantResp: test.Result[any]{
				Code: 510004,
				Msg:  "岗位当前状态不允许这个操作",
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 3)
				require.NoError(t, err)
				assert.Equal(t, domain.JobStatusApproved.ToUint8(), entity.Status)
			},
		},
		{
			name:     "审核不存在的岗位",
			before:   func(t *testing.T) {},
			req:      web.DetailReq{ID: 999},
			wantCode: 500,
			wantResp: test.Result[any]{
				Code: 510002,
				Msg:  "岗位不存在",
			},
			after: func(t *testing.T) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/job/approve", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `jobs`").Error
			require.NoError(t, err)
		})
	}
}

func (s *AdminHandlerTestSuite) TestReject() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.DetailReq
		wantCode int
		after    func(t *testing.T)
	}{
		{
			name: "拒绝待审核岗位",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          1,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					Status:      domain.JobStatusPending.ToUint8(),
				}).Error
				require.NoError(t, err)
			},
			req:      web.DetailReq{ID: 1},
			wantCode: 200,
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, domain.JobStatusRejected.ToUint8(), entity.Status)
			},
		},
		{
			name: "拒绝是终态",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Job{
					ID:          2,
					Title:       "岗位",
					Company:     "公司",
					Description: "描述",
					Status:      domain.JobStatusRejected.ToUint8(),
				}).Error
				require.NoError(t, err)
			},
			req:      web.DetailReq{ID: 2},
			wantCode: 500,
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				entity, err := s.dao.Get(ctx, 2)
				require.NoError(t, err)
				assert.Equal(t, domain.JobStatusRejected.ToUint8(), entity.Status)
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/job/reject", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `jobs`").Error
			require.NoError(t, err)
		})
	}
}

func (s *AdminHandlerTestSuite) TestReAnalyze() {
	// 入库之后引擎升级了，重新分析要覆盖快照，但不动状态
	err := s.db.Create(&dao.Job{
		ID:          1,
		Title:       "Data Entry",
		Company:     "Global Corp",
		Description: "Easy money, just pay a small registration fee to get started",
		Status:      domain.JobStatusApproved.ToUint8(),
		TrustScore:  100,
		Recommendation: "This job posting appears legitimate with " +
			"no significant fraud indicators.",
	}).Error
	require.NoError(s.T(), err)
	req, err := http.NewRequest(http.MethodPost,
		"/job/reanalyze", iox.NewJSONReader(web.DetailReq{ID: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(s.T(), 24, resp.Data.TrustScore)
	assert.True(s.T(), resp.Data.Fraudulent)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	entity, err := s.dao.Get(ctx, 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 24, entity.TrustScore)
	assert.True(s.T(), entity.Fraudulent)
	assert.Equal(s.T(), []string{"Suspicious keywords: registration fee"}, entity.FlaggedContent.Val)
	assert.Equal(s.T(),
		"This job posting is highly likely to be fraudulent based on multiple warning signs. It should be rejected to protect job seekers.",
		entity.Recommendation)
	assert.True(s.T(), entity.Utime > 0)
	assert.Equal(s.T(), domain.JobStatusApproved.ToUint8(), entity.Status)
}

func TestJobAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
