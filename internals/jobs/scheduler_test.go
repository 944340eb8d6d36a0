package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"edusuite_backend/internals/configs"
	assistantModel "edusuite_backend/internals/features/ai/assistant/model"
	assistantService "edusuite_backend/internals/features/ai/assistant/service"
	feeModel "edusuite_backend/internals/features/finance/fees/model"
	feeService "edusuite_backend/internals/features/finance/fees/service"
	studentModel "edusuite_backend/internals/features/school/students/model"
	"edusuite_backend/internals/testutil"
)

func TestRunOverdueSweep(t *testing.T) {
	db := testutil.NewDB(t)
	school := testutil.CreateSchool(t, db, "Greenfield")
	st := studentModel.StudentModel{SchoolID: school.ID, Name: "Tunde Bakare"}
	require.NoError(t, db.Create(&st).Error)

	past := datatypes.Date(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	future := datatypes.Date(time.Now().AddDate(1, 0, 0))
	late := feeModel.FeeModel{SchoolID: school.ID, StudentID: st.ID, Title: "Tuition", Amount: 100, DueDate: &past}
	open := feeModel.FeeModel{SchoolID: school.ID, StudentID: st.ID, Title: "Bus", Amount: 20, DueDate: &future}
	require.NoError(t, db.Create(&late).Error)
	require.NoError(t, db.Create(&open).Error)

	n, err := RunOverdueSweep(context.Background(), feeService.NewFeeService(db))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, db.First(&late, "id = ?", late.ID).Error)
	require.NoError(t, db.First(&open, "id = ?", open.ID).Error)
	assert.Equal(t, feeModel.StatusOverdue, late.Status)
	assert.Equal(t, feeModel.StatusPending, open.Status)
}

func TestRunCachePrune(t *testing.T) {
	db := testutil.NewDB(t)
	svc := assistantService.NewAssistantService(db, nil)

	old := assistantModel.AICacheModel{CacheScope: "s", QueryHash: "old", QueryText: "q", ResponseJSON: datatypes.JSON(`{}`), CreatedAt: time.Now().AddDate(0, 0, -40)}
	fresh := assistantModel.AICacheModel{CacheScope: "s", QueryHash: "new", QueryText: "q", ResponseJSON: datatypes.JSON(`{}`)}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&fresh).Error)

	n, err := RunCachePrune(context.Background(), svc, 0)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = RunCachePrune(context.Background(), svc, 30)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var left int64
	require.NoError(t, db.Model(&assistantModel.AICacheModel{}).Count(&left).Error)
	assert.EqualValues(t, 1, left)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	db := testutil.NewDB(t)
	fees := feeService.NewFeeService(db)
	assistant := assistantService.NewAssistantService(db, nil)

	_, err := Start(&configs.Config{FeeOverdueCron: "not a cron", AICacheCron: "@daily"}, fees, assistant)
	assert.Error(t, err)

	c, err := Start(&configs.Config{FeeOverdueCron: "@hourly", AICacheCron: "@daily", AICacheTTLDays: 30}, fees, assistant)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)
	<-c.Stop().Done()
}
