package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDraftID      = errors.New("invalid draft id")
	ErrDraftNotFound       = errors.New("draft not found")
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrInvalidRemoteID     = errors.New("invalid remote id")
	ErrInvalidHeaderField  = errors.New("invalid header field")
)

// TaxComponentInput is one tax slice as entered in the form.
type TaxComponentInput struct {
	Name string
	Rate string
}

// LineItemInput is a candidate row as entered in the form. Quantity and rate
// arrive as free text; non-numeric input parses to zero and is then rejected
// by row validation.
type LineItemInput struct {
	ProductID string
	Name      string
	Quantity  string
	UnitRate  string
	Taxes     []TaxComponentInput
	GroupID   string
}

// LineItemUpdate is a partial row edit; nil fields stay untouched.
type LineItemUpdate struct {
	Name     *string
	Quantity *string
	UnitRate *string
	Taxes    *[]TaxComponentInput
}

// IDraftUseCase exposes the draft-editing operations behind the back-office
// forms: one session per form-in-progress, mutated only through these calls.
type IDraftUseCase interface {
	Create(ctx context.Context, kind string) (entities.Draft, error)
	Hydrate(ctx context.Context, kind, remoteID string) (entities.Draft, error)
	GetByID(ctx context.Context, id string) (entities.Draft, error)
	SetHeaderField(ctx context.Context, id, field, value string) (entities.Draft, error)
	AddLineItem(ctx context.Context, id string, input LineItemInput) (entities.Draft, error)
	UpdateLineItem(ctx context.Context, id, rowID string, update LineItemUpdate) (entities.Draft, error)
	RemoveLineItem(ctx context.Context, id, rowID string) (entities.Draft, error)
	AddGroup(ctx context.Context, id, name string) (entities.Draft, error)
	RemoveGroup(ctx context.Context, id, groupID string) (entities.Draft, error)
	Reset(ctx context.Context, id string) (entities.Draft, error)
	Discard(ctx context.Context, id string) error
}

type DraftUseCase struct {
	repo    interfaces.IDraftRepository
	gateway interfaces.IRemoteGateway
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDraftRepository, gateway interfaces.IRemoteGateway) *DraftUseCase {
	return &DraftUseCase{repo: repo, gateway: gateway}
}

func (u *DraftUseCase) Create(ctx context.Context, kind string) (entities.Draft, error) {
	k := entities.DocumentKind(strings.TrimSpace(kind))
	if !k.Valid() {
		return entities.Draft{}, ErrInvalidDocumentKind
	}

	now := time.Now().UTC()
	d := entities.Draft{
		ID:        uuid.NewString(),
		Kind:      k,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Save(ctx, d)
}

// Hydrate loads an existing upstream entity into a fresh edit-mode draft.
func (u *DraftUseCase) Hydrate(ctx context.Context, kind, remoteID string) (entities.Draft, error) {
	k := entities.DocumentKind(strings.TrimSpace(kind))
	if !k.Valid() {
		return entities.Draft{}, ErrInvalidDocumentKind
	}
	remoteID = strings.TrimSpace(remoteID)
	if remoteID == "" {
		return entities.Draft{}, ErrInvalidRemoteID
	}

	payload, err := u.gateway.Fetch(ctx, k.Resource(), remoteID)
	if err != nil {
		return entities.Draft{}, err
	}

	d := entities.DraftFromRemote(uuid.NewString(), k, remoteID, payload, uuid.NewString)
	return u.repo.Save(ctx, d)
}

func (u *DraftUseCase) GetByID(ctx context.Context, id string) (entities.Draft, error) {
	return u.load(ctx, id)
}

func (u *DraftUseCase) SetHeaderField(ctx context.Context, id, field, value string) (entities.Draft, error) {
	d, err := u.load(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}

	field = strings.TrimSpace(field)
	if field == "" {
		return entities.Draft{}, ErrInvalidHeaderField
	}
	if _, err := d.SetHeaderField(field, value); err != nil {
		return entities.Draft{}, err
	}
	return u.save(ctx, d)
}

func (u *DraftUseCase) AddLineItem(ctx context.Context, id string, input LineItemInput) (entities.Draft, error) {
	d, err := u.load(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}

	item, err := entities.NewLineItem(
		uuid.NewString(),
		strings.TrimSpace(input.ProductID),
		strings.TrimSpace(input.Name),
		entities.ParseAmount(input.Quantity),
		entities.ParseAmount(input.UnitRate),
		taxComponents(input.Taxes),
	)
	if err != nil {
		return entities.Draft{}, err
	}

	if input.GroupID != "" {
		if err := d.AddItemToGroup(input.GroupID, item); err != nil {
			return entities.Draft{}, err
		}
	} else {
		d.AddItem(item)
	}
	return u.save(ctx, d)
}

func (u *DraftUseCase) UpdateLineItem(ctx context.Context, id, rowID string, update LineItemUpdate) (entities.Draft, error) {
	d, err := u.load(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}

	patch := entities.LineItemPatch{Name: update.Name}
	if update.Quantity != nil {
		qty := entities.ParseAmount(*update.Quantity)
		patch.Quantity = &qty
	}
	if update.UnitRate != nil {
		rate := entities.ParseAmount(*update.UnitRate)
		patch.UnitRate = &rate
	}
	if update.Taxes != nil {
		taxes := taxComponents(*update.Taxes)
		patch.Taxes = &taxes
	}

	if err := d.UpdateItem(rowID, patch); err != nil {
		return entities.Draft{}, err
	}
	return u.save(ctx, d)
}

func (u *DraftUseCase) RemoveLineItem(ctx context.Context, id, rowID string) (entities.Draft, error) {
	d, err := u.load(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}
	if err := d.RemoveItem(rowID); err != nil {
		return entities.Draft{}, err
	}
	return u.save(ctx, d)
}

func (u *DraftUseCase) AddGroup(ctx context.Context, id, name string) (entities.Draft, error) {
	d, err := u.load(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}
	if err := d.AddGroup(uuid.NewString(), strings.TrimSpace(name)); err != nil {
		return entities.Draft{}, err
	}
	return u.save(ctx, d)
}

func (u *DraftUseCase) RemoveGroup(ctx context.Context, id, groupID string) (entities.Draft, error) {
	d, err := u.load(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}
	if err := d.RemoveGroup(groupID); err != nil {
		return entities.Draft{}, err
	}
	return u.save(ctx, d)
}

func (u *DraftUseCase) Reset(ctx context.Context, id string) (entities.Draft, error) {
	d, err := u.load(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}
	d.Reset()
	return u.save(ctx, d)
}

func (u *DraftUseCase) Discard(ctx context.Context, id string) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *DraftUseCase) load(ctx context.Context, id string) (entities.Draft, error) {
	return loadDraft(ctx, u.repo, id)
}

func loadDraft(ctx context.Context, repo interfaces.IDraftRepository, id string) (entities.Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Draft{}, ErrInvalidDraftID
	}
	d, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}
	if d.ID == "" {
		return entities.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *DraftUseCase) save(ctx context.Context, d entities.Draft) (entities.Draft, error) {
	d.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, d)
}

func taxComponents(inputs []TaxComponentInput) []entities.TaxComponent {
	if len(inputs) == 0 {
		return nil
	}
	taxes := make([]entities.TaxComponent, 0, len(inputs))
	for _, in := range inputs {
		taxes = append(taxes, entities.TaxComponent{
			Name: strings.TrimSpace(in.Name),
			Rate: entities.ParseAmount(in.Rate),
		})
	}
	return taxes
}
