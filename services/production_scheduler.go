package services

import (
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protexflow/protexflow-backend/models"
	"github.com/protexflow/protexflow-backend/utils"
)

// DeadlineScheduler üretim terminlerini periyodik olarak tarar ve yaklaşan ya da
// geçmiş terminler için ilgili kullanıcılara bildirim üretir. Örnek, process
// girişinde (cmd/main.go) kurulur ve yaşam döngüsü oradan yönetilir; paket
// seviyesinde singleton yoktur.
type DeadlineScheduler struct {
	db      *gorm.DB
	mu      sync.Mutex // lifecycle alanlarını korur
	runMu   sync.Mutex // bir tarama döngüsü aynı anda tek başına çalışır
	ticker  *time.Ticker
	stopCh  chan struct{}
	running bool
}

func NewDeadlineScheduler(db *gorm.DB) *DeadlineScheduler {
	return &DeadlineScheduler{db: db}
}

// Start zamanlayıcıyı verilen periyotla çalıştırır. İlk kontrol hemen yapılır.
// Zaten çalışıyorsa ikinci bir timer kurulmaz.
func (s *DeadlineScheduler) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		log.Println("Termin zamanlayıcısı zaten çalışıyor, tekrar başlatılmadı")
		return
	}

	s.ticker = time.NewTicker(interval)
	s.stopCh = make(chan struct{})
	s.running = true
	log.Printf("Termin zamanlayıcısı başlatıldı, periyot: %s", interval)

	go s.runChecks()

	go func(ticker *time.Ticker, stopCh chan struct{}) {
		for {
			select {
			case <-ticker.C:
				s.runChecks()
			case <-stopCh:
				return
			}
		}
	}(s.ticker, s.stopCh)
}

func (s *DeadlineScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.ticker.Stop()
	close(s.stopCh)
	s.ticker = nil
	s.running = false
	log.Println("Termin zamanlayıcısı durduruldu")
}

func (s *DeadlineScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// TriggerManualCheck timer durumundan bağımsız olarak tek bir tarama döngüsü
// çalıştırır ve incelenen kayıt sayılarını döner. Zamanlama planını etkilemez.
func (s *DeadlineScheduler) TriggerManualCheck() (approaching int, overdue int, err error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	approaching, errA := s.CheckApproachingDeadlines()
	overdue, errB := s.CheckOverdueProductions()
	if errA != nil {
		return approaching, overdue, errA
	}
	return approaching, overdue, errB
}

// runChecks bir tick'in gövdesidir. Hatalar loglanır ama asla dışarı
// taşınmaz; başarısız bir döngü timer'ı durdurmamalıdır.
func (s *DeadlineScheduler) runChecks() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if n, err := s.CheckApproachingDeadlines(); err != nil {
		log.Println("Yaklaşan termin taraması başarısız:", err)
	} else if n > 0 {
		log.Printf("Yaklaşan termin taraması: %d kayıt incelendi", n)
	}

	if n, err := s.CheckOverdueProductions(); err != nil {
		log.Println("Geciken üretim taraması başarısız:", err)
	} else if n > 0 {
		log.Printf("Geciken üretim taraması: %d kayıt incelendi", n)
	}
}

// trackedEntity bir üretim kaydının bağlı olduğu sipariş ya da numunenin
// bildirimlerde kullanılan özetidir.
type trackedEntity struct {
	label         string // "Sipariş" / "Numune"
	number        string
	link          string
	orderID       *uuid.UUID
	sampleID      *uuid.UUID
	manufactureID *uuid.UUID
	customerID    uuid.UUID
	customer      *models.User
}

// resolveTrackedEntity kaydın sipariş mi numune mi olduğunu belirler.
// İkisi de boşsa false döner; bu durum şema gereği oluşmamalıdır ama
// tarama tek bozuk kayıt yüzünden durmamalıdır.
func resolveTrackedEntity(p *models.ProductionTracking) (*trackedEntity, bool) {
	if p.Order != nil {
		return &trackedEntity{
			label:         "Sipariş",
			number:        p.Order.OrderNumber,
			link:          "/dashboard/orders/" + p.Order.ID.String(),
			orderID:       &p.Order.ID,
			manufactureID: p.Order.ManufactureID,
			customerID:    p.Order.CustomerID,
			customer:      p.Order.Customer,
		}, true
	}
	if p.Sample != nil {
		return &trackedEntity{
			label:         "Numune",
			number:        p.Sample.SampleNumber,
			link:          "/dashboard/samples/" + p.Sample.ID.String(),
			sampleID:      &p.Sample.ID,
			manufactureID: p.Sample.ManufactureID,
			customerID:    p.Sample.CustomerID,
			customer:      p.Sample.Customer,
		}, true
	}
	return nil, false
}

// CheckApproachingDeadlines önümüzdeki 24 saat içinde termini dolacak ve hâlâ
// üretimde olan kayıtları tarar. Dönen sayı incelenen kayıt sayısıdır,
// gönderilen bildirim sayısı değil.
func (s *DeadlineScheduler) CheckApproachingDeadlines() (int, error) {
	now := time.Now()
	t := now.Add(24 * time.Hour)
	tomorrow := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())

	var productions []models.ProductionTracking
	err := s.db.
		Preload("Order.Customer").
		Preload("Order.Manufacturer").
		Preload("Sample.Customer").
		Preload("Sample.Manufacturer").
		Preload("Company").
		Where("estimated_end_date >= ? AND estimated_end_date <= ? AND overall_status = ?",
			now, tomorrow, models.ProductionInProgress).
		Find(&productions).Error
	if err != nil {
		return 0, err
	}

	for i := range productions {
		if err := s.notifyApproaching(&productions[i], now); err != nil {
			// Tek kayıttaki hata taramanın kalanını durdurmaz
			log.Printf("Yaklaşan termin bildirimi başarısız (takip %s): %v", productions[i].ID, err)
		}
	}
	return len(productions), nil
}

func (s *DeadlineScheduler) notifyApproaching(p *models.ProductionTracking, now time.Time) error {
	entity, ok := resolveTrackedEntity(p)
	if !ok {
		log.Printf("Üretim takibi %s ne siparişe ne numuneye bağlı, atlandı", p.ID)
		return nil
	}

	hoursLeft := int(math.Round(p.EstimatedEndDate.Sub(now).Hours()))

	recipients := s.approachingRecipients(entity, p.CompanyID)
	if len(recipients) == 0 {
		return nil
	}

	// Son 12 saat içinde aynı takip için bildirim gittiyse tekrar gönderme
	var existing int64
	err := s.db.Model(&models.Notification{}).
		Where("production_tracking_id = ? AND type = ? AND user_id IN ? AND created_at >= ?",
			p.ID, models.NotificationProduction, recipients, now.Add(-12*time.Hour)).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		log.Printf("Takip %s için son 12 saatte bildirim gönderilmiş, atlandı", p.ID)
		return nil
	}

	content := ProductionDeadlineApproachingTemplate(entity.label, entity.number, hoursLeft, p.CurrentStage)
	for _, userID := range recipients {
		CreateNotification(s.db, NotificationInput{
			UserID:               userID,
			Type:                 models.NotificationProduction,
			Title:                content.Title,
			Message:              content.Message,
			Link:                 &entity.link,
			OrderID:              entity.orderID,
			SampleID:             entity.sampleID,
			ProductionTrackingID: &p.ID,
		})
	}
	return nil
}

// approachingRecipients üretici + firma üyelerinden (sahip ve çalışan)
// tekilleştirilmiş alıcı kümesini üretir.
func (s *DeadlineScheduler) approachingRecipients(entity *trackedEntity, companyID uuid.UUID) []uuid.UUID {
	var ids []uuid.UUID
	if entity.manufactureID != nil {
		ids = append(ids, *entity.manufactureID)
	}

	memberIDs, err := CompanyMemberIDs(s.db, companyID)
	if err != nil {
		log.Println("Firma üyeleri sorgulanamadı:", err)
	} else {
		ids = append(ids, memberIDs...)
	}
	return dedupeIDs(ids)
}

// CheckOverdueProductions termini geçmiş ve hâlâ üretimde olan kayıtları tarar.
// Alıcı kümesine müşteri de dahildir; tekilleştirme penceresi takvim günüdür.
func (s *DeadlineScheduler) CheckOverdueProductions() (int, error) {
	now := time.Now()

	var productions []models.ProductionTracking
	err := s.db.
		Preload("Order.Customer").
		Preload("Order.Manufacturer").
		Preload("Sample.Customer").
		Preload("Sample.Manufacturer").
		Preload("Company").
		Where("estimated_end_date < ? AND overall_status = ?", now, models.ProductionInProgress).
		Find(&productions).Error
	if err != nil {
		return 0, err
	}

	for i := range productions {
		if err := s.notifyOverdue(&productions[i], now); err != nil {
			log.Printf("Gecikme bildirimi başarısız (takip %s): %v", productions[i].ID, err)
		}
	}
	return len(productions), nil
}

func (s *DeadlineScheduler) notifyOverdue(p *models.ProductionTracking, now time.Time) error {
	entity, ok := resolveTrackedEntity(p)
	if !ok {
		log.Printf("Üretim takibi %s ne siparişe ne numuneye bağlı, atlandı", p.ID)
		return nil
	}

	daysOverdue := int(now.Sub(*p.EstimatedEndDate).Hours() / 24)

	recipients := append(s.approachingRecipients(entity, p.CompanyID), entity.customerID)
	recipients = dedupeIDs(recipients)
	if len(recipients) == 0 {
		return nil
	}

	// Aynı takvim günü içinde bir kez bildir
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var existing int64
	err := s.db.Model(&models.Notification{}).
		Where("production_tracking_id = ? AND type = ? AND title LIKE ? AND created_at >= ?",
			p.ID, models.NotificationProduction, "%"+OverdueTitleMarker+"%", midnight).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		log.Printf("Takip %s için bugün gecikme bildirimi gönderilmiş, atlandı", p.ID)
		return nil
	}

	content := ProductionOverdueTemplate(entity.label, entity.number, daysOverdue, p.CurrentStage)
	for _, userID := range recipients {
		CreateNotification(s.db, NotificationInput{
			UserID:               userID,
			Type:                 models.NotificationProduction,
			Title:                content.Title,
			Message:              content.Message,
			Link:                 &entity.link,
			OrderID:              entity.orderID,
			SampleID:             entity.sampleID,
			ProductionTrackingID: &p.ID,
		})
	}

	// SMTP yapılandırılmışsa müşteriye e-posta ile de haber ver
	if os.Getenv("SMTP_EMAIL") != "" && entity.customer != nil && entity.customer.Email != "" {
		if err := utils.SendEmail(entity.customer.Email, content.Title, content.Message); err != nil {
			log.Println("Gecikme e-postası gönderilemedi:", err)
		}
	}
	return nil
}
