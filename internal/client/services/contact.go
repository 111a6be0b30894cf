package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

// ErrInvalidForm is matched by every *FormError.
var ErrInvalidForm = errors.New("invalid contact form")

// Notification texts shown after a submission attempt.
const (
	MsgContactSent    = "Mesaj trimis cu succes!"
	MsgContactInvalid = "Completează corect toate câmpurile!"
)

// MinBodyLength is the shortest accepted message body, in characters.
const MinBodyLength = 10

// MessageTimeLayout mirrors the ro-RO locale date format.
const MessageTimeLayout = "02.01.2006, 15:04:05"

// Contact form fields as named on the form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldBody    = "body"
)

var (
	namePattern    = regexp.MustCompile(`^[A-Za-zĂÂÎȘȚăâîșț\s]{2,50}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	subjectPattern = regexp.MustCompile(`^.{3,100}$`)
)

// fieldTags maps each form field to its validator tag.
var fieldTags = map[string]string{
	FieldName:    "aroma_name",
	FieldEmail:   "aroma_email",
	FieldSubject: "aroma_subject",
	FieldBody:    fmt.Sprintf("min=%d", MinBodyLength),
}

var fieldMessages = map[string]string{
	FieldName:    "2-50 letters and spaces",
	FieldEmail:   "a valid e-mail address",
	FieldSubject: "3-100 characters",
	FieldBody:    "at least 10 characters",
}

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	for tag, re := range map[string]*regexp.Regexp{
		"aroma_name":    namePattern,
		"aroma_email":   emailPattern,
		"aroma_subject": subjectPattern,
	} {
		re := re
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	return v
}

// FormError lists the fields that failed validation with a hint for each.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(parts, "; "))
}

func (e *FormError) Unwrap() error { return ErrInvalidForm }

// ContactService validates and stores contact form submissions.
type ContactService interface {
	// ValidateField checks a single field as the user types. Fields without a
	// rule always pass.
	ValidateField(field, value string) error
	Validate(form models.ContactForm) error
	Submit(ctx context.Context, form models.ContactForm) (models.Message, error)
}

type contactService struct {
	store    *storage.Store
	notifier Notifier
	log      logging.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewContactService(store *storage.Store, notifier Notifier, log logging.Logger) ContactService {
	return &contactService{
		store:    store,
		notifier: notifier,
		log:      log.With("component", "contact"),
		validate: newFormValidator(),
		now:      time.Now,
	}
}

func (c *contactService) ValidateField(field, value string) error {
	tag, ok := fieldTags[field]
	if !ok {
		return nil
	}
	if err := c.validate.Var(value, tag); err != nil {
		return &FormError{Fields: map[string]string{field: fieldMessages[field]}}
	}
	return nil
}

func (c *contactService) Validate(form models.ContactForm) error {
	err := c.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := &FormError{Fields: make(map[string]string, len(verrs))}
	for _, v := range verrs {
		fe.Fields[v.Field()] = fieldMessages[v.Field()]
	}
	return fe
}

// Submit appends the message exactly once when every field passes. On
// failure nothing is stored and the caller keeps the typed values.
func (c *contactService) Submit(ctx context.Context, form models.ContactForm) (models.Message, error) {
	if err := c.Validate(form); err != nil {
		c.notifier.Notify(ctx, LevelError, MsgContactInvalid)
		return models.Message{}, err
	}

	msg := models.Message{
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Body:      form.Body,
		Timestamp: c.now().Format(MessageTimeLayout),
	}
	if err := storage.AppendJSON(ctx, c.store, storage.KeyMessages, msg); err != nil {
		return models.Message{}, fmt.Errorf("save message: %w", err)
	}

	c.log.Info(ctx, "contact message saved", "subject", msg.Subject, "email", msg.Email)
	c.notifier.Notify(ctx, LevelInfo, MsgContactSent)
	return msg, nil
}
