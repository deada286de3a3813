package reports_test

import (
	"context"
	"testing"
	"time"

	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *reports.Service {
	return reports.NewService(memory.NewReportRepo())
}

func TestCreate_AnonymousDropsContact(t *testing.T) {
	svc := newService()

	rep, err := svc.Create(context.Background(), reports.CreateInput{
		Type:        "abuse",
		Location:    "5th and Main",
		Description: "Injured dog chained outside for days",
		ContactInfo: "tipster@example.com",
		Anonymous:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, reports.StatusSubmitted, rep.Status)
	assert.True(t, rep.Anonymous)
	assert.Nil(t, rep.ContactInfo, "anonymous report must drop contact info")
}

func TestCreate_KeepsContactWhenNotAnonymous(t *testing.T) {
	svc := newService()

	rep, err := svc.Create(context.Background(), reports.CreateInput{
		Type:        "neglect",
		Location:    "Riverside shelter",
		Description: "Animals without food or clean water",
		ContactInfo: "  witness@example.com  ",
	})
	require.NoError(t, err)

	require.NotNil(t, rep.ContactInfo)
	assert.Equal(t, "witness@example.com", *rep.ContactInfo)
}

func TestCreate_AggregatesValidationMessages(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), reports.CreateInput{
		Type:        "",
		Location:    "ab",
		Description: "short",
	})
	require.ErrorIs(t, err, reports.ErrInvalidInput)

	msg := err.Error()
	assert.Contains(t, msg, "Please select an incident type")
	assert.Contains(t, msg, "Please provide a valid location")
	assert.Contains(t, msg, "Please provide more details about the incident")
}

func TestUpdate_OnlyModerationFieldsChange(t *testing.T) {
	svc := newService()

	rep, err := svc.Create(context.Background(), reports.CreateInput{
		Type:        "abandonment",
		Location:    "Highway 12 rest stop",
		Description: "Box of kittens left by the road",
	})
	require.NoError(t, err)

	status := "investigating"
	notes := "Assigned to field team"
	assignee := "inspector-3"
	updated, err := svc.Update(context.Background(), rep.ID, reports.UpdateInput{
		Status:     &status,
		AdminNotes: &notes,
		AssignedTo: &assignee,
	})
	require.NoError(t, err)

	assert.Equal(t, reports.StatusInvestigating, updated.Status)
	require.NotNil(t, updated.AdminNotes)
	assert.Equal(t, notes, *updated.AdminNotes)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, assignee, *updated.AssignedTo)

	// el contenido original queda intacto
	assert.Equal(t, rep.Type, updated.Type)
	assert.Equal(t, rep.Location, updated.Location)
	assert.Equal(t, rep.Description, updated.Description)
}

func TestUpdate_EmptyNotesClearsField(t *testing.T) {
	svc := newService()

	rep, err := svc.Create(context.Background(), reports.CreateInput{
		Type:        "neglect",
		Location:    "Back alley on Oak St",
		Description: "Dog kept in a too-small cage",
	})
	require.NoError(t, err)

	notes := "temp note"
	withNotes, err := svc.Update(context.Background(), rep.ID, reports.UpdateInput{AdminNotes: &notes})
	require.NoError(t, err)
	require.NotNil(t, withNotes.AdminNotes)

	empty := "   "
	cleared, err := svc.Update(context.Background(), rep.ID, reports.UpdateInput{AdminNotes: &empty})
	require.NoError(t, err)
	assert.Nil(t, cleared.AdminNotes)
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	svc := newService()

	rep, err := svc.Create(context.Background(), reports.CreateInput{
		Type:        "abuse",
		Location:    "Downtown market",
		Description: "Vendor mistreating animals on display",
	})
	require.NoError(t, err)

	bogus := "archived"
	_, err = svc.Update(context.Background(), rep.ID, reports.UpdateInput{Status: &bogus})
	assert.ErrorIs(t, err, reports.ErrInvalidInput)
}

func TestUpdate_UnknownReport(t *testing.T) {
	svc := newService()

	status := string(reports.StatusResolved)
	_, err := svc.Update(context.Background(), 999, reports.UpdateInput{Status: &status})
	assert.ErrorIs(t, err, reports.ErrNotFound)
}

func TestCreate_StampsTimestamps(t *testing.T) {
	svc := newService()
	before := time.Now().Add(-time.Second)

	rep, err := svc.Create(context.Background(), reports.CreateInput{
		Type:        "neglect",
		Location:    "County fairgrounds",
		Description: "Livestock without shade in the heat",
	})
	require.NoError(t, err)

	assert.True(t, rep.CreatedAt.After(before))
	assert.Equal(t, rep.CreatedAt, rep.UpdatedAt)
}
