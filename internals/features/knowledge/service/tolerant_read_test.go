package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	knowledgeModel "worklaw_backend/internals/features/knowledge/model"
	wageModel "worklaw_backend/internals/features/metadata/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Discard,
	})
	require.NoError(t, err)
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestMinimumWageRowsCanonical(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&knowledgeModel.MinimumWageNoticeModel{}))
	require.NoError(t, db.Create(&knowledgeModel.MinimumWageNoticeModel{
		Year: 2024, Hourly: intPtr(9860), Monthly209h: intPtr(2060740),
	}).Error)
	require.NoError(t, db.Create(&knowledgeModel.MinimumWageNoticeModel{
		Year: 2025, Hourly: intPtr(10030),
	}).Error)

	reader := &TolerantReader{DB: db}
	rows := reader.MinimumWageRows()

	require.Len(t, rows, 2)
	assert.Equal(t, 2025, rows[0].Year, "newest year first")
	assert.Equal(t, 10030, rows[0].Hourly)
	assert.Nil(t, rows[0].Monthly209h)
	assert.Equal(t, 9860, rows[1].Hourly)
	require.NotNil(t, rows[1].Monthly209h)
	assert.Equal(t, 2060740, *rows[1].Monthly209h)
}

func TestMinimumWageRowsLegacyAmountColumn(t *testing.T) {
	db := openTestDB(t)
	// legacy shape: amount/unit instead of hourly
	require.NoError(t, db.Exec(`CREATE TABLE minimum_wage_history (
		year INTEGER PRIMARY KEY,
		amount INTEGER NOT NULL,
		unit TEXT,
		monthly_209h INTEGER,
		notice_no TEXT,
		notice_date TEXT,
		source_url TEXT
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO minimum_wage_history (year, amount, unit) VALUES (2023, 9620, 'KRW/hour')`,
	).Error)

	reader := &TolerantReader{DB: db}
	rows := reader.MinimumWageRows()

	require.Len(t, rows, 1)
	assert.Equal(t, 2023, rows[0].Year)
	assert.Equal(t, 9620, rows[0].Hourly, "amount coalesces into hourly")
}

func TestMinimumWageRowsDriftedSharedTable(t *testing.T) {
	db := openTestDB(t)
	// drifted shape: both column sets present, hourly never written
	require.NoError(t, db.Exec(`CREATE TABLE minimum_wage_history (
		year INTEGER PRIMARY KEY,
		hourly INTEGER,
		amount INTEGER,
		monthly_209h INTEGER,
		notice_no TEXT,
		notice_date TEXT,
		source_url TEXT
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO minimum_wage_history (year, amount) VALUES (2022, 9160)`,
	).Error)

	reader := &TolerantReader{DB: db}
	rows := reader.MinimumWageRows()

	require.Len(t, rows, 1)
	assert.Equal(t, 9160, rows[0].Hourly, "null hourly coalesces to amount")
}

func TestMinimumWageRowsIgnoresAuditLog(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&knowledgeModel.MinimumWageNoticeModel{}))
	require.NoError(t, db.AutoMigrate(&wageModel.MinimumWageHistoryModel{}))
	require.NoError(t, db.Create(&wageModel.MinimumWageHistoryModel{
		Year: 2030, NewAmount: intPtr(12345), Action: "CREATE", ChangedBy: "admin",
	}).Error)

	reader := &TolerantReader{DB: db}

	assert.Empty(t, reader.MinimumWageRows(), "audit rows are not published notices")
}

func TestMinimumWageRowsMissingTable(t *testing.T) {
	db := openTestDB(t)

	reader := &TolerantReader{DB: db}
	rows := reader.MinimumWageRows()

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestHolidayRowsCanonicalAndDefaults(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&knowledgeModel.HolidayModel{}))
	require.NoError(t, db.Create(&knowledgeModel.HolidayModel{
		Date: "2025-01-01", Name: "신정", Type: strPtr("public"), IsPublic: boolPtr(true),
	}).Error)
	require.NoError(t, db.Create(&knowledgeModel.HolidayModel{
		Date: "2025-05-05", Name: "어린이날",
	}).Error)
	require.NoError(t, db.Create(&knowledgeModel.HolidayModel{
		Date: "2024-12-25", Name: "성탄절",
	}).Error)

	reader := &TolerantReader{DB: db}
	rows := reader.HolidayRows(2025)

	require.Len(t, rows, 2, "only the requested year")
	assert.Equal(t, "2025-01-01", rows[0].Date, "date ascending")
	assert.Equal(t, "public", rows[1].Type, "type defaults to public")
	assert.True(t, rows[1].IsPublic, "is_public defaults to true")
}

func TestHolidayRowsLegacySingularTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Exec(`CREATE TABLE holiday (
		date TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT,
		is_public INTEGER,
		source_ref TEXT
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO holiday (date, name, type, is_public) VALUES ('2025-03-01', '삼일절', NULL, NULL)`,
	).Error)

	reader := &TolerantReader{DB: db}
	rows := reader.HolidayRows(2025)

	require.Len(t, rows, 1)
	assert.Equal(t, "삼일절", rows[0].Name)
	assert.Equal(t, "public", rows[0].Type)
	assert.True(t, rows[0].IsPublic)
}

func TestPolicyBulletinRowsOrdering(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&knowledgeModel.PolicyBulletinModel{}))
	require.NoError(t, db.Create(&knowledgeModel.PolicyBulletinModel{
		ID: "B-1", Title: "old", EffectiveDate: strPtr("2024-01-01"),
	}).Error)
	require.NoError(t, db.Create(&knowledgeModel.PolicyBulletinModel{
		ID: "B-2", Title: "new", EffectiveDate: strPtr("2025-01-01"),
	}).Error)
	require.NoError(t, db.Create(&knowledgeModel.PolicyBulletinModel{
		ID: "B-3", Title: "undated",
	}).Error)

	reader := &TolerantReader{DB: db}
	rows := reader.PolicyBulletinRows()

	require.Len(t, rows, 3)
	assert.Equal(t, "B-2", rows[0].ID, "newest effective date first")
	assert.Equal(t, "B-3", rows[2].ID, "undated rows sort last")
}

func TestPolicyBulletinRowsLegacySingularTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Exec(`CREATE TABLE policy_bulletin (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		effective_date TEXT,
		audience TEXT,
		category TEXT,
		summary_md TEXT,
		law_id TEXT,
		article_no TEXT,
		source_url TEXT,
		tags TEXT
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO policy_bulletin (id, title) VALUES ('LEG-1', 'legacy bulletin')`,
	).Error)

	reader := &TolerantReader{DB: db}
	rows := reader.PolicyBulletinRows()

	require.Len(t, rows, 1)
	assert.Equal(t, "LEG-1", rows[0].ID)
}

func TestInterpretationRowsOrder(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&knowledgeModel.AdminInterpretationModel{}))
	require.NoError(t, db.Create(&knowledgeModel.AdminInterpretationModel{
		InterpID: "I-1", Title: "answered early", AnsweredAt: strPtr("2024-01-10"),
	}).Error)
	require.NoError(t, db.Create(&knowledgeModel.AdminInterpretationModel{
		InterpID: "I-2", Title: "asked only", AskedAt: strPtr("2025-02-01"),
	}).Error)

	reader := &TolerantReader{DB: db}
	rows := reader.InterpretationRows()

	require.Len(t, rows, 2)
	assert.Equal(t, "I-2", rows[0].InterpID, "asked date stands in when never answered")
}

func TestInterpretationRowsMissingTable(t *testing.T) {
	db := openTestDB(t)

	reader := &TolerantReader{DB: db}
	assert.Empty(t, reader.InterpretationRows())
}
