package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/services"
	"github.com/dmitrijs2005/aroma/internal/common"
)

type formField struct {
	name   string
	prompt string
	value  func(f *models.ContactForm) *string
}

var contactFields = []formField{
	{services.FieldName, "Nume", func(f *models.ContactForm) *string { return &f.Name }},
	{services.FieldEmail, "Email", func(f *models.ContactForm) *string { return &f.Email }},
	{services.FieldSubject, "Subiect", func(f *models.ContactForm) *string { return &f.Subject }},
	{services.FieldBody, "Mesaj", func(f *models.ContactForm) *string { return &f.Body }},
}

// Contact walks through the contact form. Each field is checked as soon as
// it is entered. When the submission is rejected the typed values are kept
// and only the failing fields are asked for again, until the user gives up.
func (a *App) Contact(ctx context.Context) error {
	a.track(ctx, common.PageContact)

	var form models.ContactForm
	pending := contactFields
	for {
		for _, f := range pending {
			if err := a.readField(&form, f); err != nil {
				return err
			}
		}

		_, err := a.contactService.Submit(ctx, form)
		if err == nil {
			return nil
		}

		var fe *services.FormError
		if !errors.As(err, &fe) {
			a.log.Error(ctx, "contact submit failed", "error", err)
			return err
		}

		again, rerr := getSimpleText(a.reader, "Corectezi câmpurile? (d/n)", a.out)
		if rerr != nil || !strings.EqualFold(again, "d") {
			return err
		}

		pending = pending[:0:0]
		for _, f := range contactFields {
			if _, bad := fe.Fields[f.name]; bad {
				pending = append(pending, f)
			}
		}
	}
}

func (a *App) readField(form *models.ContactForm, f formField) error {
	var (
		v   string
		err error
	)
	if f.name == services.FieldBody {
		v, err = getMultiline(a.reader, f.prompt, services.MinBodyLength, a.out)
	} else {
		v, err = getSimpleText(a.reader, f.prompt, a.out)
	}
	if err != nil {
		return err
	}
	*f.value(form) = v

	if verr := a.contactService.ValidateField(f.name, v); verr != nil {
		var fe *services.FormError
		if errors.As(verr, &fe) {
			a.println("  ✗ " + f.prompt + ": " + fe.Fields[f.name])
		}
		return nil
	}
	a.println("  ✓")
	return nil
}
