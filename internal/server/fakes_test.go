package server_test

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/YatruSathi/-yatrusathi-backend/internal/apperrors"
	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
)

// memStore emulates the durable store, including the (user, event) unique
// indexes the reservation rules depend on.
type memStore struct {
	users         map[uuid.UUID]models.User
	tokens        map[string]models.AuthToken
	events        map[uuid.UUID]models.Event
	images        []models.EventImage
	bookings      map[uuid.UUID]models.Booking
	favorites     map[uuid.UUID]models.Favorite
	reviews       []models.Review
	messages      []models.ChatMessage
	notifications map[uuid.UUID]models.Notification
	profiles      map[uuid.UUID]models.Profile

	seq  int
	base time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[uuid.UUID]models.User{},
		tokens:        map[string]models.AuthToken{},
		events:        map[uuid.UUID]models.Event{},
		bookings:      map[uuid.UUID]models.Booking{},
		favorites:     map[uuid.UUID]models.Favorite{},
		notifications: map[uuid.UUID]models.Notification{},
		profiles:      map[uuid.UUID]models.Profile{},
		base:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp, standing in for the store's
// autoCreateTime columns.
func (s *memStore) tick() time.Time {
	s.seq++
	return s.base.Add(time.Duration(s.seq) * time.Second)
}

/* ---------- users ---------- */

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = r.s.tick()
	r.s.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(username string) (bool, error) {
	for _, user := range r.s.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EmailExists(email string) (bool, error) {
	for _, user := range r.s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List() ([]models.User, error) {
	users := make([]models.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

/* ---------- tokens ---------- */

type fakeTokenRepo struct{ s *memStore }

func (r *fakeTokenRepo) Create(token *models.AuthToken) error {
	token.CreatedAt = r.s.tick()
	r.s.tokens[token.Key] = *token
	return nil
}

func (r *fakeTokenRepo) Get(key string) (*models.AuthToken, error) {
	token, ok := r.s.tokens[key]
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return &token, nil
}

func (r *fakeTokenRepo) Delete(key string) error {
	if _, ok := r.s.tokens[key]; !ok {
		return apperrors.ErrInvalidToken
	}
	delete(r.s.tokens, key)
	return nil
}

/* ---------- events ---------- */

type fakeEventRepo struct{ s *memStore }

func (r *fakeEventRepo) Create(event *models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = r.s.tick()
	r.s.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) AttachImage(image *models.EventImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	image.CreatedAt = r.s.tick()
	r.s.images = append(r.s.images, *image)
	return nil
}

func (r *fakeEventRepo) GetByID(id uuid.UUID) (*models.Event, error) {
	event, ok := r.s.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return r.hydrate(event), nil
}

func (r *fakeEventRepo) hydrate(event models.Event) *models.Event {
	if creator, ok := r.s.users[event.CreatedByID]; ok {
		event.CreatedBy = creator
	}
	event.Images = nil
	for _, image := range r.s.images {
		if image.EventID == event.ID {
			event.Images = append(event.Images, image)
		}
	}
	return &event
}

func (r *fakeEventRepo) List(offset, limit int) ([]models.Event, int64, error) {
	events := make([]models.Event, 0, len(r.s.events))
	for _, event := range r.s.events {
		events = append(events, *r.hydrate(event))
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })

	total := int64(len(events))
	if offset >= len(events) {
		return []models.Event{}, total, nil
	}
	end := offset + limit
	if end > len(events) {
		end = len(events)
	}
	return events[offset:end], total, nil
}

func (r *fakeEventRepo) Update(event *models.Event) error {
	r.s.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) Delete(id uuid.UUID) error {
	if _, ok := r.s.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	for bid, booking := range r.s.bookings {
		if booking.EventID == id {
			delete(r.s.bookings, bid)
		}
	}
	for fid, favorite := range r.s.favorites {
		if favorite.EventID == id {
			delete(r.s.favorites, fid)
		}
	}
	reviews := r.s.reviews[:0]
	for _, review := range r.s.reviews {
		if review.EventID != id {
			reviews = append(reviews, review)
		}
	}
	r.s.reviews = reviews
	messages := r.s.messages[:0]
	for _, message := range r.s.messages {
		if message.EventID != id {
			messages = append(messages, message)
		}
	}
	r.s.messages = messages
	images := r.s.images[:0]
	for _, image := range r.s.images {
		if image.EventID != id {
			images = append(images, image)
		}
	}
	r.s.images = images
	delete(r.s.events, id)
	return nil
}

/* ---------- bookings ---------- */

type fakeBookingRepo struct{ s *memStore }

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	for _, existing := range r.s.bookings {
		if existing.UserID == booking.UserID && existing.EventID == booking.EventID {
			return apperrors.ErrDuplicateBooking
		}
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.BookedAt = r.s.tick()
	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r *fakeBookingRepo) GetByID(id uuid.UUID) (*models.Booking, error) {
	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, apperrors.ErrBookingNotFound
	}
	return r.hydrate(booking), nil
}

func (r *fakeBookingRepo) hydrate(booking models.Booking) *models.Booking {
	if user, ok := r.s.users[booking.UserID]; ok {
		booking.User = user
	}
	if event, ok := r.s.events[booking.EventID]; ok {
		booking.Event = event
	}
	return &booking
}

func (r *fakeBookingRepo) ListByUser(userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	for _, booking := range r.s.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, *r.hydrate(booking))
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].BookedAt.After(bookings[j].BookedAt) })
	return bookings, nil
}

func (r *fakeBookingRepo) Update(booking *models.Booking) error {
	r.s.bookings[booking.ID] = *booking
	return nil
}

/* ---------- favorites ---------- */

type fakeFavoriteRepo struct{ s *memStore }

func (r *fakeFavoriteRepo) Create(favorite *models.Favorite) (*models.Favorite, error) {
	for _, existing := range r.s.favorites {
		if existing.UserID == favorite.UserID && existing.EventID == favorite.EventID {
			return r.hydrate(existing), nil
		}
	}
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	favorite.CreatedAt = r.s.tick()
	r.s.favorites[favorite.ID] = *favorite
	return r.hydrate(*favorite), nil
}

func (r *fakeFavoriteRepo) hydrate(favorite models.Favorite) *models.Favorite {
	if user, ok := r.s.users[favorite.UserID]; ok {
		favorite.User = user
	}
	if event, ok := r.s.events[favorite.EventID]; ok {
		favorite.Event = event
	}
	return &favorite
}

func (r *fakeFavoriteRepo) ListByUser(userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	for _, favorite := range r.s.favorites {
		if favorite.UserID == userID {
			favorites = append(favorites, *r.hydrate(favorite))
		}
	}
	sort.Slice(favorites, func(i, j int) bool { return favorites[i].CreatedAt.After(favorites[j].CreatedAt) })
	return favorites, nil
}

func (r *fakeFavoriteRepo) DeleteByUserAndEvent(userID, eventID uuid.UUID) error {
	for id, favorite := range r.s.favorites {
		if favorite.UserID == userID && favorite.EventID == eventID {
			delete(r.s.favorites, id)
			return nil
		}
	}
	return apperrors.ErrFavoriteNotFound
}

/* ---------- reviews ---------- */

type fakeReviewRepo struct{ s *memStore }

func (r *fakeReviewRepo) Create(review *models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = r.s.tick()
	r.s.reviews = append(r.s.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) ListByEvent(eventID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	for _, review := range r.s.reviews {
		if review.EventID == eventID {
			reviews = append(reviews, *r.hydrate(review))
		}
	}
	return reviews, nil
}

func (r *fakeReviewRepo) ListAll() ([]models.Review, error) {
	reviews := make([]models.Review, 0, len(r.s.reviews))
	for _, review := range r.s.reviews {
		reviews = append(reviews, *r.hydrate(review))
	}
	return reviews, nil
}

func (r *fakeReviewRepo) hydrate(review models.Review) *models.Review {
	if user, ok := r.s.users[review.UserID]; ok {
		review.User = user
	}
	return &review
}

/* ---------- chat ---------- */

type fakeChatRepo struct{ s *memStore }

func (r *fakeChatRepo) Create(message *models.ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = r.s.tick()
	}
	r.s.messages = append(r.s.messages, *message)
	return nil
}

func (r *fakeChatRepo) ListByEvent(eventID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	for _, message := range r.s.messages {
		if message.EventID == eventID {
			if sender, ok := r.s.users[message.SenderID]; ok {
				message.Sender = sender
			}
			messages = append(messages, message)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].Timestamp.Before(messages[j].Timestamp) })
	return messages, nil
}

/* ---------- notifications ---------- */

type fakeNotificationRepo struct{ s *memStore }

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = r.s.tick()
	r.s.notifications[notification.ID] = *notification
	return nil
}

func (r *fakeNotificationRepo) GetByID(id uuid.UUID) (*models.Notification, error) {
	notification, ok := r.s.notifications[id]
	if !ok {
		return nil, apperrors.ErrNotificationNotFound
	}
	return &notification, nil
}

func (r *fakeNotificationRepo) ListByUser(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	for _, notification := range r.s.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *fakeNotificationRepo) MarkRead(notification *models.Notification) error {
	notification.IsRead = true
	r.s.notifications[notification.ID] = *notification
	return nil
}

/* ---------- profiles ---------- */

type fakeProfileRepo struct{ s *memStore }

func (r *fakeProfileRepo) GetOrCreateByUser(userID uuid.UUID) (*models.Profile, error) {
	if profile, ok := r.s.profiles[userID]; ok {
		if user, exists := r.s.users[userID]; exists {
			profile.User = user
		}
		return &profile, nil
	}
	profile := models.Profile{ID: uuid.New(), UserID: userID, CreatedAt: r.s.tick()}
	r.s.profiles[userID] = profile
	if user, exists := r.s.users[userID]; exists {
		profile.User = user
	}
	return &profile, nil
}

func (r *fakeProfileRepo) Update(profile *models.Profile) error {
	r.s.profiles[profile.UserID] = *profile
	return nil
}
