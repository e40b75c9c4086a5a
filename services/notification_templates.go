package services

import "fmt"

// NotificationContent bir bildirimin kullanıcıya görünen kısmıdır.
// Tüm şablonlar saf fonksiyondur: aynı argümanlar her zaman aynı içeriği üretir.
type NotificationContent struct {
	Title   string
	Message string
}

// Gecikme bildirimlerinin başlığında geçen işaret; günlük tekilleştirme
// sorgusu bu kelimeye göre filtreler.
const OverdueTitleMarker = "Gecikme"

// ==== SİPARİŞ ====

func OrderCreatedTemplate(orderNumber string) NotificationContent {
	return NotificationContent{
		Title:   "🧵 Yeni Sipariş",
		Message: fmt.Sprintf("%s numaralı yeni bir sipariş oluşturuldu.", orderNumber),
	}
}

func OrderStatusChangedTemplate(orderNumber, status string) NotificationContent {
	return NotificationContent{
		Title:   "📦 Sipariş Durumu Güncellendi",
		Message: fmt.Sprintf("%s numaralı siparişin durumu güncellendi: %s", orderNumber, status),
	}
}

func OrderConfirmedTemplate(orderNumber string) NotificationContent {
	return NotificationContent{
		Title:   "✅ Sipariş Onaylandı",
		Message: fmt.Sprintf("%s numaralı sipariş üretici tarafından onaylandı.", orderNumber),
	}
}

func OrderShippedTemplate(orderNumber string) NotificationContent {
	return NotificationContent{
		Title:   "🚚 Sipariş Kargoya Verildi",
		Message: fmt.Sprintf("%s numaralı sipariş kargoya teslim edildi.", orderNumber),
	}
}

func OrderCancelledTemplate(orderNumber string) NotificationContent {
	return NotificationContent{
		Title:   "❌ Sipariş İptal Edildi",
		Message: fmt.Sprintf("%s numaralı sipariş iptal edildi.", orderNumber),
	}
}

// ==== NUMUNE ====

func SampleRequestedTemplate(sampleNumber string) NotificationContent {
	return NotificationContent{
		Title:   "🧪 Yeni Numune Talebi",
		Message: fmt.Sprintf("%s numaralı yeni bir numune talebi oluşturuldu.", sampleNumber),
	}
}

func SampleStatusChangedTemplate(sampleNumber, status string) NotificationContent {
	return NotificationContent{
		Title:   "🧪 Numune Durumu Güncellendi",
		Message: fmt.Sprintf("%s numaralı numunenin durumu güncellendi: %s", sampleNumber, status),
	}
}

func SampleApprovedTemplate(sampleNumber string) NotificationContent {
	return NotificationContent{
		Title:   "✅ Numune Onaylandı",
		Message: fmt.Sprintf("%s numaralı numune müşteri tarafından onaylandı.", sampleNumber),
	}
}

func SampleRejectedTemplate(sampleNumber, reason string) NotificationContent {
	return NotificationContent{
		Title:   "❌ Numune Reddedildi",
		Message: fmt.Sprintf("%s numaralı numune reddedildi. Gerekçe: %s", sampleNumber, reason),
	}
}

// ==== ÜRETİM ====

// entityLabel "Sipariş" ya da "Numune" olmalıdır.
func ProductionDeadlineApproachingTemplate(entityLabel, number string, hoursLeft int, stage string) NotificationContent {
	return NotificationContent{
		Title: "⚠️ Üretim Termini Yaklaşıyor",
		Message: fmt.Sprintf(
			"%s %s için üretim terminine yaklaşık %d saat kaldı. Mevcut aşama: %s",
			entityLabel, number, hoursLeft, stage,
		),
	}
}

func ProductionOverdueTemplate(entityLabel, number string, daysOverdue int, stage string) NotificationContent {
	return NotificationContent{
		Title: "🚨 Üretim Gecikmesi",
		Message: fmt.Sprintf(
			"%s %s üretimi %d gündür gecikmede. Mevcut aşama: %s. Lütfen üretim planını gözden geçirin.",
			entityLabel, number, daysOverdue, stage,
		),
	}
}

func ProductionStageUpdatedTemplate(entityLabel, number, stage string) NotificationContent {
	return NotificationContent{
		Title:   "🏭 Üretim Aşaması Güncellendi",
		Message: fmt.Sprintf("%s %s üretimi yeni aşamaya geçti: %s", entityLabel, number, stage),
	}
}

func ProductionCompletedTemplate(entityLabel, number string) NotificationContent {
	return NotificationContent{
		Title:   "🎉 Üretim Tamamlandı",
		Message: fmt.Sprintf("%s %s üretimi başarıyla tamamlandı.", entityLabel, number),
	}
}

// ==== KALİTE ====

func QualityReportCreatedTemplate(entityLabel, number string) NotificationContent {
	return NotificationContent{
		Title:   "📋 Yeni Kalite Raporu",
		Message: fmt.Sprintf("%s %s için yeni bir kalite raporu oluşturuldu.", entityLabel, number),
	}
}

func QualityIssueFoundTemplate(entityLabel, number, issue string) NotificationContent {
	return NotificationContent{
		Title:   "⚠️ Kalite Sorunu Tespit Edildi",
		Message: fmt.Sprintf("%s %s kalite kontrolünde sorun tespit edildi: %s", entityLabel, number, issue),
	}
}

// ==== MESAJ ====

func NewMessageTemplate(senderName string) NotificationContent {
	return NotificationContent{
		Title:   "💬 Yeni Mesaj",
		Message: fmt.Sprintf("%s size yeni bir mesaj gönderdi.", senderName),
	}
}

// ==== DEĞERLENDİRME ====

func ReviewReceivedTemplate(companyName string, rating int) NotificationContent {
	return NotificationContent{
		Title:   "⭐ Yeni Değerlendirme",
		Message: fmt.Sprintf("%s firmanıza %d yıldızlı yeni bir değerlendirme bıraktı.", companyName, rating),
	}
}

// ==== ATÖLYE ====

func WorkshopAssignedTemplate(workshopName, entityLabel, number string) NotificationContent {
	return NotificationContent{
		Title:   "🔧 Atölye Ataması",
		Message: fmt.Sprintf("%s %s, %s atölyesine atandı.", entityLabel, number, workshopName),
	}
}

func WorkshopCompletedTemplate(workshopName, entityLabel, number string) NotificationContent {
	return NotificationContent{
		Title:   "🔧 Atölye İşlemi Tamamlandı",
		Message: fmt.Sprintf("%s atölyesi %s %s için işlemini tamamladı.", workshopName, entityLabel, number),
	}
}

// ==== KOLEKSİYON ====

func CollectionPublishedTemplate(collectionName string) NotificationContent {
	return NotificationContent{
		Title:   "👗 Yeni Koleksiyon",
		Message: fmt.Sprintf("%s koleksiyonu yayınlandı.", collectionName),
	}
}

func CollectionUpdatedTemplate(collectionName string) NotificationContent {
	return NotificationContent{
		Title:   "👗 Koleksiyon Güncellendi",
		Message: fmt.Sprintf("%s koleksiyonu güncellendi.", collectionName),
	}
}

// ==== SİSTEM ====

func SystemWelcomeTemplate(fullName string) NotificationContent {
	return NotificationContent{
		Title:   "👋 Hoş Geldiniz",
		Message: fmt.Sprintf("Merhaba %s, ProtexFlow'a hoş geldiniz!", fullName),
	}
}

func SystemMaintenanceTemplate(when string) NotificationContent {
	return NotificationContent{
		Title:   "🛠️ Planlı Bakım",
		Message: fmt.Sprintf("Sistem %s tarihinde kısa süreli bakıma alınacaktır.", when),
	}
}
