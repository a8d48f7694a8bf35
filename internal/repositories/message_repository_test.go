package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"gorm.io/gorm"
)

func seedParticipants(t *testing.T, db *gorm.DB) {
	t.Helper()
	a := newUser(1, "male", day(2000, time.January, 1))
	a.KnownAs = "A"
	b := newUser(2, "female", day(1995, time.June, 15))
	b.KnownAs = "B"
	c := newUser(3, "female", day(1996, time.June, 15))
	create(t, db, a, b, c, &models.Photo{UserID: 1, URL: "https://img/a", IsMain: true})
}

func message(id, from, to uint, sent time.Time) *models.Message {
	return &models.Message{ID: id, SenderID: from, RecipientID: to, Content: "m", MessageSent: sent}
}

func messageIDs(ms []models.Message) []uint {
	out := make([]uint, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func container(userID uint, name string) models.MessageParams {
	return models.MessageParams{PageParams: page(1, 10), UserID: userID, MessageContainer: name}
}

func TestGetMessagesForUserContainers(t *testing.T) {
	db := openDB(t)
	seedParticipants(t, db)
	read := message(2, 1, 2, today.Add(2*time.Hour))
	read.IsRead = true
	deleted := message(3, 1, 2, today.Add(3*time.Hour))
	deleted.RecipientDeleted = true
	create(t, db,
		message(1, 1, 2, today.Add(1*time.Hour)),
		read,
		deleted,
		message(4, 2, 1, today.Add(4*time.Hour)),
		message(5, 3, 2, today.Add(5*time.Hour)),
	)
	repo := NewPostgresMessageRepository(db)
	ctx := context.Background()

	cases := []struct {
		params models.MessageParams
		want   []uint
	}{
		{container(2, models.ContainerInbox), []uint{5, 2, 1}},
		{container(2, models.ContainerUnread), []uint{5, 1}},
		{container(2, ""), []uint{5, 1}},
		{container(2, "Archive"), []uint{5, 1}},
		{container(2, models.ContainerOutbox), []uint{4}},
		{container(1, models.ContainerOutbox), []uint{3, 2, 1}},
		{container(1, models.ContainerInbox), []uint{4}},
	}
	for _, c := range cases {
		got, err := repo.GetMessagesForUser(ctx, c.params)
		if err != nil {
			t.Fatalf("%d/%q: %v", c.params.UserID, c.params.MessageContainer, err)
		}
		if !equalIDs(messageIDs(got.Items), c.want) {
			t.Fatalf("%d/%q: got %v, want %v", c.params.UserID, c.params.MessageContainer, messageIDs(got.Items), c.want)
		}
		if got.TotalCount != int64(len(c.want)) {
			t.Fatalf("%d/%q: total %d", c.params.UserID, c.params.MessageContainer, got.TotalCount)
		}
	}
}

func TestGetMessagesForUserReadTransition(t *testing.T) {
	db := openDB(t)
	seedParticipants(t, db)
	msg := message(1, 1, 2, today)
	create(t, db, msg)
	repo := NewPostgresMessageRepository(db)
	ctx := context.Background()

	unread, err := repo.GetMessagesForUser(ctx, container(2, ""))
	if err != nil || len(unread.Items) != 1 {
		t.Fatalf("expected the message in unread, got (%v, %v)", unread, err)
	}

	uow := NewUnitOfWork(db)
	uow.Stage(repo.MarkRead(msg.ID, today.Add(time.Hour)))
	if changed, err := uow.SaveAll(ctx); err != nil || !changed {
		t.Fatalf("mark read: (%v, %v)", changed, err)
	}

	unread, err = repo.GetMessagesForUser(ctx, container(2, ""))
	if err != nil {
		t.Fatalf("unread: %v", err)
	}
	if len(unread.Items) != 0 {
		t.Fatalf("read message still unread: %v", messageIDs(unread.Items))
	}
	inbox, err := repo.GetMessagesForUser(ctx, container(2, models.ContainerInbox))
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if !equalIDs(messageIDs(inbox.Items), []uint{1}) {
		t.Fatalf("expected message in inbox, got %v", messageIDs(inbox.Items))
	}
}

func TestGetMessagesForUserPreloadsParticipants(t *testing.T) {
	db := openDB(t)
	seedParticipants(t, db)
	create(t, db, message(1, 1, 2, today))

	got, err := NewPostgresMessageRepository(db).GetMessagesForUser(context.Background(), container(2, models.ContainerInbox))
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	m := got.Items[0]
	if m.Sender.KnownAs != "A" || len(m.Sender.Photos) != 1 {
		t.Fatalf("sender not preloaded: %+v", m.Sender)
	}
	if m.Recipient.KnownAs != "B" || len(m.Recipient.Photos) != 0 {
		t.Fatalf("recipient not preloaded: %+v", m.Recipient)
	}
}

func TestGetMessageThread(t *testing.T) {
	db := openDB(t)
	seedParticipants(t, db)
	hiddenFromRecipient := message(3, 1, 2, today.Add(3*time.Hour))
	hiddenFromRecipient.RecipientDeleted = true
	hiddenFromSender := message(4, 2, 1, today.Add(4*time.Hour))
	hiddenFromSender.SenderDeleted = true
	create(t, db,
		message(1, 1, 2, today.Add(1*time.Hour)),
		message(2, 2, 1, today.Add(2*time.Hour)),
		hiddenFromRecipient,
		hiddenFromSender,
		message(5, 3, 1, today.Add(5*time.Hour)),
	)
	repo := NewPostgresMessageRepository(db)
	ctx := context.Background()

	fromA, err := repo.GetMessageThread(ctx, 1, 2)
	if err != nil {
		t.Fatalf("thread 1-2: %v", err)
	}
	// 4 was deleted by its sender (2) only, 3 by its recipient (2) only.
	if !equalIDs(messageIDs(fromA), []uint{4, 3, 2, 1}) {
		t.Fatalf("thread seen by 1: %v", messageIDs(fromA))
	}
	if fromA[1].Sender.KnownAs != "A" || fromA[1].Recipient.KnownAs != "B" || len(fromA[1].Sender.Photos) != 1 {
		t.Fatalf("participants not preloaded")
	}

	fromB, err := repo.GetMessageThread(ctx, 2, 1)
	if err != nil {
		t.Fatalf("thread 2-1: %v", err)
	}
	if !equalIDs(messageIDs(fromB), []uint{2, 1}) {
		t.Fatalf("thread seen by 2: %v", messageIDs(fromB))
	}
}

func TestRecipientDeletedStillInSenderViews(t *testing.T) {
	db := openDB(t)
	seedParticipants(t, db)
	msg := message(1, 1, 2, today)
	msg.RecipientDeleted = true
	create(t, db, msg)
	repo := NewPostgresMessageRepository(db)
	ctx := context.Background()

	for _, name := range []string{models.ContainerInbox, models.ContainerUnread} {
		got, err := repo.GetMessagesForUser(ctx, container(2, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(got.Items) != 0 {
			t.Fatalf("%s: deleted message visible to recipient", name)
		}
	}
	outbox, err := repo.GetMessagesForUser(ctx, container(1, models.ContainerOutbox))
	if err != nil || len(outbox.Items) != 1 {
		t.Fatalf("outbox: (%v, %v)", outbox, err)
	}
	thread, err := repo.GetMessageThread(ctx, 1, 2)
	if err != nil || len(thread) != 1 {
		t.Fatalf("thread: (%v, %v)", thread, err)
	}
}

func TestMessageFlagWritesKeepConcurrentChanges(t *testing.T) {
	db := openDB(t)
	seedParticipants(t, db)
	create(t, db, message(1, 1, 2, today))
	repo := NewPostgresMessageRepository(db)
	ctx := context.Background()

	// all three units are staged before any of them commits
	bySender := NewUnitOfWork(db)
	bySender.Stage(repo.MarkDeletedBy(1, 1))
	bySender.Stage(repo.PurgeIfDeletedByBoth(1))
	readByRecipient := NewUnitOfWork(db)
	readByRecipient.Stage(repo.MarkRead(1, today.Add(time.Hour)))
	byRecipient := NewUnitOfWork(db)
	byRecipient.Stage(repo.MarkDeletedBy(1, 2))
	byRecipient.Stage(repo.PurgeIfDeletedByBoth(1))

	for name, uow := range map[string]*UnitOfWork{"sender delete": bySender, "recipient read": readByRecipient} {
		if changed, err := uow.SaveAll(ctx); err != nil || !changed {
			t.Fatalf("%s: (%v, %v)", name, changed, err)
		}
	}

	got, err := repo.GetMessage(ctx, 1)
	if err != nil || got == nil {
		t.Fatalf("reload: (%v, %v)", got, err)
	}
	if !got.SenderDeleted || got.RecipientDeleted || !got.IsRead || got.DateRead == nil {
		t.Fatalf("flags lost: sender=%v recipient=%v read=%v", got.SenderDeleted, got.RecipientDeleted, got.IsRead)
	}

	again := NewUnitOfWork(db)
	again.Stage(repo.MarkRead(1, today.Add(2*time.Hour)))
	if changed, err := again.SaveAll(ctx); err != nil || changed {
		t.Fatalf("second read should change nothing: (%v, %v)", changed, err)
	}

	if changed, err := byRecipient.SaveAll(ctx); err != nil || !changed {
		t.Fatalf("recipient delete: (%v, %v)", changed, err)
	}
	if got, err := repo.GetMessage(ctx, 1); err != nil || got != nil {
		t.Fatalf("message should be purged once both sides deleted it: (%v, %v)", got, err)
	}
}

func TestMarkDeletedByIgnoresOutsiders(t *testing.T) {
	db := openDB(t)
	seedParticipants(t, db)
	create(t, db, message(1, 1, 2, today))
	repo := NewPostgresMessageRepository(db)

	uow := NewUnitOfWork(db)
	uow.Stage(repo.MarkDeletedBy(1, 3))
	if changed, err := uow.SaveAll(context.Background()); err != nil || changed {
		t.Fatalf("outsider changed the message: (%v, %v)", changed, err)
	}
}

func TestGetMessageLoadsParticipants(t *testing.T) {
	db := openDB(t)
	seedParticipants(t, db)
	create(t, db, message(1, 1, 2, today))

	got, err := NewPostgresMessageRepository(db).GetMessage(context.Background(), 1)
	if err != nil || got == nil {
		t.Fatalf("get: (%v, %v)", got, err)
	}
	if got.Sender.KnownAs != "A" || got.Recipient.KnownAs != "B" {
		t.Fatalf("participants not loaded: %q %q", got.Sender.KnownAs, got.Recipient.KnownAs)
	}
	if len(got.Sender.Photos) != 1 || len(got.Recipient.Photos) != 0 {
		t.Fatalf("participant photos not loaded: %d %d", len(got.Sender.Photos), len(got.Recipient.Photos))
	}
}
