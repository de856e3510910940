package services

import (
	"context"
	"testing"
	"time"

	"penlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainEmailQueue() {
	for {
		select {
		case <-EmailQueue:
		default:
			return
		}
	}
}

func TestContactSubmit_EmptyEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.contacts.Submit(context.Background(), &models.ContactRequest{Name: "Ali", Email: "  ", Message: "Merhaba"})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.EqualError(t, err, "All fields are required")

	list, err := f.contacts.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContactSubmit_InvalidEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.contacts.Submit(context.Background(), &models.ContactRequest{Name: "Ali", Email: "ali-at-example", Message: "Merhaba"})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestContactLifecycle(t *testing.T) {
	f := newFixture(t)

	m, err := f.contacts.Submit(context.Background(), &models.ContactRequest{Name: " Ali ", Email: "Ali@Example.com", Message: "Merhaba"})
	require.NoError(t, err)
	assert.Equal(t, "Ali", m.Name)
	assert.Equal(t, "ali@example.com", m.Email)
	assert.False(t, m.SubmissionDate.IsZero())

	got, err := f.contacts.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", got.Message)

	require.NoError(t, f.contacts.Delete(context.Background(), m.ID))
	_, err = f.contacts.GetByID(context.Background(), m.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, f.contacts.Delete(context.Background(), m.ID), "Message not found")
}

func TestContactSubmit_QueuesNotification(t *testing.T) {
	drainEmailQueue()
	f := newFixture(t)
	svc := NewContactService(f.store.Contacts(), "owner@penlink.com")

	_, err := svc.Submit(context.Background(), &models.ContactRequest{Name: "Zeynep", Email: "zeynep@example.com", Message: "Teklif"})
	require.NoError(t, err)

	select {
	case job := <-EmailQueue:
		assert.Equal(t, []string{"owner@penlink.com"}, job.To)
		assert.True(t, job.IsHTML)
		assert.Contains(t, job.Body, "Teklif")
	case <-time.After(time.Second):
		t.Fatal("bildirim kuyruğa eklenmedi")
	}
}

func TestContactSubmit_RejectsLineBreakInName(t *testing.T) {
	drainEmailQueue()
	f := newFixture(t)
	svc := NewContactService(f.store.Contacts(), "owner@penlink.com")

	_, err := svc.Submit(context.Background(), &models.ContactRequest{
		Name:    "Ali\r\nBcc: kurban@example.com\r\n\r\nSahte gövde",
		Email:   "ali@example.com",
		Message: "Merhaba",
	})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	select {
	case job := <-EmailQueue:
		t.Fatalf("beklenmeyen bildirim: %q", job.Subject)
	default:
	}
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
