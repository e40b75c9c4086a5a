package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplatesAreDeterministic(t *testing.T) {
	a := ProductionDeadlineApproachingTemplate("Sipariş", "ORD-1001", 5, "Dikim")
	b := ProductionDeadlineApproachingTemplate("Sipariş", "ORD-1001", 5, "Dikim")
	assert.Equal(t, a, b)

	c := ProductionOverdueTemplate("Numune", "SMP-2001", 3, "Kesim")
	d := ProductionOverdueTemplate("Numune", "SMP-2001", 3, "Kesim")
	assert.Equal(t, c, d)
}

func TestApproachingTemplateContent(t *testing.T) {
	got := ProductionDeadlineApproachingTemplate("Sipariş", "ORD-1001", 5, "Dikim")
	assert.Equal(t, "⚠️ Üretim Termini Yaklaşıyor", got.Title)
	assert.Contains(t, got.Message, "ORD-1001")
	assert.Contains(t, got.Message, "5 saat")
	assert.Contains(t, got.Message, "Dikim")
}

func TestOverdueTemplateCarriesMarker(t *testing.T) {
	got := ProductionOverdueTemplate("Sipariş", "ORD-1001", 3, "Dikim")
	assert.Contains(t, got.Title, OverdueTitleMarker)
	assert.Contains(t, got.Message, "3 gündür")
	assert.Contains(t, got.Message, "üretim planını gözden geçirin")
}

func TestOrderAndSampleTemplates(t *testing.T) {
	assert.Contains(t, OrderStatusChangedTemplate("ORD-7", "SHIPPED").Message, "SHIPPED")
	assert.Contains(t, SampleRejectedTemplate("SMP-9", "renk farkı").Message, "renk farkı")
	assert.Contains(t, SystemWelcomeTemplate("Ayşe").Message, "Ayşe")
}
