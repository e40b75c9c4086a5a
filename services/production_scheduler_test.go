package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/protexflow/protexflow-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Her test kendi isimli in-memory veritabanını kullanır; böylece gorm'un
	// bağlantı havuzu aynı veritabanını görür ama testler birbirini etkilemez
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Order{},
		&models.Sample{},
		&models.ProductionTracking{},
		&models.ProductionStageUpdate{},
		&models.Notification{},
	))
	return db
}

type deadlineFixture struct {
	company      models.Company
	customer     models.User
	manufacturer models.User
	employee1    models.User
	employee2    models.User
	order        models.Order
	tracking     models.ProductionTracking
}

// newDeadlineFixture IN_PROGRESS durumunda, siparişe bağlı bir üretim takibi
// kurar. Üretici aynı zamanda firma sahibidir; alıcı kümesi tekilleştirme
// testleri bu duruma dayanır.
func newDeadlineFixture(t *testing.T, db *gorm.DB, estimatedEnd time.Time) *deadlineFixture {
	t.Helper()

	fx := &deadlineFixture{}

	fx.company = models.Company{Name: "Dokuma Tekstil", Type: models.CompanyTypeManufacturer}
	require.NoError(t, db.Create(&fx.company).Error)

	fx.customer = models.User{FullName: "Ayşe Alıcı", Email: "ayse@example.com", Password: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&fx.customer).Error)

	fx.manufacturer = models.User{FullName: "Mehmet Usta", Email: "mehmet@example.com", Password: "x", Role: models.RoleCompanyOwner, CompanyID: &fx.company.ID}
	require.NoError(t, db.Create(&fx.manufacturer).Error)

	fx.employee1 = models.User{FullName: "Elif Çalışan", Email: "elif@example.com", Password: "x", Role: models.RoleCompanyEmployee, CompanyID: &fx.company.ID}
	require.NoError(t, db.Create(&fx.employee1).Error)

	fx.employee2 = models.User{FullName: "Can Çalışan", Email: "can@example.com", Password: "x", Role: models.RoleCompanyEmployee, CompanyID: &fx.company.ID}
	require.NoError(t, db.Create(&fx.employee2).Error)

	fx.order = models.Order{
		OrderNumber:   "ORD-1001",
		CustomerID:    fx.customer.ID,
		ManufactureID: &fx.manufacturer.ID,
		CompanyID:     &fx.company.ID,
		Status:        "IN_PRODUCTION",
		Quantity:      500,
	}
	require.NoError(t, db.Create(&fx.order).Error)

	fx.tracking = models.ProductionTracking{
		OrderID:          &fx.order.ID,
		CompanyID:        fx.company.ID,
		OverallStatus:    models.ProductionInProgress,
		CurrentStage:     "Dikim",
		EstimatedEndDate: &estimatedEnd,
	}
	require.NoError(t, db.Create(&fx.tracking).Error)

	return fx
}

func countProductionNotifications(t *testing.T, db *gorm.DB, trackingID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("production_tracking_id = ? AND type = ?", trackingID, models.NotificationProduction).
		Count(&count).Error)
	return count
}

func TestStartIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	s := NewDeadlineScheduler(db)
	defer s.Stop()

	s.Start(time.Hour)
	require.True(t, s.IsRunning())
	first := s.ticker

	// İkinci çağrı yeni timer kurmamalı
	s.Start(time.Hour)
	assert.Same(t, first, s.ticker)
	assert.True(t, s.IsRunning())
}

func TestStopClearsTimer(t *testing.T) {
	db := newTestDB(t)
	s := NewDeadlineScheduler(db)

	s.Start(time.Hour)
	s.Stop()

	assert.False(t, s.IsRunning())
	assert.Nil(t, s.ticker)

	// Tekrar durdurmak panic üretmemeli
	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestApproachingDeadlineDedupeWindow(t *testing.T) {
	db := newTestDB(t)
	fx := newDeadlineFixture(t, db, time.Now().Add(5*time.Hour))
	s := NewDeadlineScheduler(db)

	examined, err := s.CheckApproachingDeadlines()
	require.NoError(t, err)
	assert.Equal(t, 1, examined)

	// Üretici (sahip) + 2 çalışan; üretici firma üyesi olarak ikinci kez sayılmaz
	assert.EqualValues(t, 3, countProductionNotifications(t, db, fx.tracking.ID))

	// 12 saatlik pencere içinde ikinci tarama yeni bildirim üretmez
	examined, err = s.CheckApproachingDeadlines()
	require.NoError(t, err)
	assert.Equal(t, 1, examined)
	assert.EqualValues(t, 3, countProductionNotifications(t, db, fx.tracking.ID))
}

func TestOverdueCalendarDayDedupe(t *testing.T) {
	db := newTestDB(t)
	fx := newDeadlineFixture(t, db, time.Now().Add(-36*time.Hour))
	s := NewDeadlineScheduler(db)

	examined, err := s.CheckOverdueProductions()
	require.NoError(t, err)
	assert.Equal(t, 1, examined)

	// Müşteri + üretici + 2 çalışan
	assert.EqualValues(t, 4, countProductionNotifications(t, db, fx.tracking.ID))

	// Aynı gün ikinci tarama yeni bildirim üretmez
	examined, err = s.CheckOverdueProductions()
	require.NoError(t, err)
	assert.Equal(t, 1, examined)
	assert.EqualValues(t, 4, countProductionNotifications(t, db, fx.tracking.ID))

	// Bildirimler dünkü tarihe çekilince yeni tur gönderilir
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := midnight.Add(-2 * time.Hour)
	require.NoError(t, db.Exec("UPDATE notifications SET created_at = ?", yesterday).Error)

	_, err = s.CheckOverdueProductions()
	require.NoError(t, err)
	assert.EqualValues(t, 8, countProductionNotifications(t, db, fx.tracking.ID))
}

func TestOverdueRecipientSet(t *testing.T) {
	db := newTestDB(t)
	fx := newDeadlineFixture(t, db, time.Now().Add(-48*time.Hour))
	s := NewDeadlineScheduler(db)

	_, err := s.CheckOverdueProductions()
	require.NoError(t, err)

	var notifications []models.Notification
	require.NoError(t, db.Where("production_tracking_id = ?", fx.tracking.ID).Find(&notifications).Error)

	got := make([]uuid.UUID, 0, len(notifications))
	for _, n := range notifications {
		got = append(got, n.UserID)
	}

	// Tam olarak {müşteri, üretici, çalışan1, çalışan2}; üretici hem
	// manufacture_id hem firma üyesi olmasına rağmen tek bildirim alır
	assert.ElementsMatch(t, []uuid.UUID{
		fx.customer.ID,
		fx.manufacturer.ID,
		fx.employee1.ID,
		fx.employee2.ID,
	}, got)
}

func TestUnlinkedTrackingIsSkipped(t *testing.T) {
	db := newTestDB(t)

	company := models.Company{Name: "Örme Tekstil"}
	require.NoError(t, db.Create(&company).Error)

	past := time.Now().Add(-24 * time.Hour)
	tracking := models.ProductionTracking{
		CompanyID:        company.ID,
		OverallStatus:    models.ProductionInProgress,
		CurrentStage:     "Kesim",
		EstimatedEndDate: &past,
	}
	require.NoError(t, db.Create(&tracking).Error)

	s := NewDeadlineScheduler(db)

	// Ne siparişe ne numuneye bağlı kayıt hatasız atlanmalı
	examined, err := s.CheckOverdueProductions()
	require.NoError(t, err)
	assert.Equal(t, 1, examined)
	assert.EqualValues(t, 0, countProductionNotifications(t, db, tracking.ID))

	examined, err = s.CheckApproachingDeadlines()
	require.NoError(t, err)
	assert.Equal(t, 0, examined)
}

func TestSampleTrackingLink(t *testing.T) {
	db := newTestDB(t)

	company := models.Company{Name: "Numune Tekstil"}
	require.NoError(t, db.Create(&company).Error)

	customer := models.User{FullName: "Deniz Alıcı", Email: "deniz@example.com", Password: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&customer).Error)

	manufacturer := models.User{FullName: "Zeynep Usta", Email: "zeynep@example.com", Password: "x", Role: models.RoleCompanyOwner, CompanyID: &company.ID}
	require.NoError(t, db.Create(&manufacturer).Error)

	sample := models.Sample{
		SampleNumber:  "SMP-2001",
		CustomerID:    customer.ID,
		ManufactureID: &manufacturer.ID,
		CompanyID:     &company.ID,
	}
	require.NoError(t, db.Create(&sample).Error)

	end := time.Now().Add(3 * time.Hour)
	tracking := models.ProductionTracking{
		SampleID:         &sample.ID,
		CompanyID:        company.ID,
		OverallStatus:    models.ProductionInProgress,
		CurrentStage:     "Kalıp",
		EstimatedEndDate: &end,
	}
	require.NoError(t, db.Create(&tracking).Error)

	s := NewDeadlineScheduler(db)
	_, err := s.CheckApproachingDeadlines()
	require.NoError(t, err)

	var n models.Notification
	require.NoError(t, db.Where("production_tracking_id = ?", tracking.ID).First(&n).Error)
	require.NotNil(t, n.Link)
	assert.Equal(t, "/dashboard/samples/"+sample.ID.String(), *n.Link)
	require.NotNil(t, n.SampleID)
	assert.Nil(t, n.OrderID)
	assert.Contains(t, n.Message, "SMP-2001")
}

func TestCompletedProductionNotScanned(t *testing.T) {
	db := newTestDB(t)
	fx := newDeadlineFixture(t, db, time.Now().Add(-24*time.Hour))

	require.NoError(t, db.Model(&fx.tracking).Update("overall_status", models.ProductionCompleted).Error)

	s := NewDeadlineScheduler(db)
	examined, err := s.CheckOverdueProductions()
	require.NoError(t, err)
	assert.Equal(t, 0, examined)
	assert.EqualValues(t, 0, countProductionNotifications(t, db, fx.tracking.ID))
}
