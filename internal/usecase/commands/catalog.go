package commands

import (
	"context"
	"log/slog"
	"time"

	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/pkg/clock"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/pkg/patch"
	"lending-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemInput struct {
	Name     string
	Category string
	ImageURL string
	Quantity int
}

// ItemPatch carries the fields to change; nil means keep.
type ItemPatch struct {
	Name     *string
	Category *string
	ImageURL *string
	Quantity *int
}

type UpsertItemInput struct {
	ID       *uuid.UUID
	Name     string
	Category string
	ImageURL string
	Quantity int
}

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

type CatalogCommands interface {
	CreateItem(ctx context.Context, in CreateItemInput) (uuid.UUID, error)
	UpdateItem(ctx context.Context, id uuid.UUID, p ItemPatch) error
	UpsertItem(ctx context.Context, in UpsertItemInput) (uuid.UUID, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	SeedCatalog(ctx context.Context) (int, error)
}

type catalogCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (c *catalogCommandsImpl) CreateItem(ctx context.Context, in CreateItemInput) (uuid.UUID, error) {
	now := c.now()
	it, err := buildItem(uuid.Nil, in, now)
	if err != nil {
		return uuid.Nil, markKind(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := tx.Catalog().Create(ctx, it); cerr != nil {
			return cerr
		}
		return enqueue(ctx, tx, shared.EventItemCreated, itemEvent(it, now), now)
	})
	if err != nil {
		return uuid.Nil, markKind(err)
	}

	c.logger.Info("item created", "item_id", it.ID(), "quantity", it.Quantity())
	return it.ID(), nil
}

func (c *catalogCommandsImpl) UpdateItem(ctx context.Context, id uuid.UUID, p ItemPatch) error {
	now := c.now()
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Catalog().FindByID(ctx, id)
		if err != nil {
			return err
		}
		delta, err := applyPatch(it, p, now)
		if err != nil {
			return err
		}
		if err := tx.Catalog().Update(ctx, it, delta); err != nil {
			return err
		}
		return enqueue(ctx, tx, shared.EventItemUpdated, itemEvent(it, now), now)
	})
	if err != nil {
		return markKind(err)
	}

	c.logger.Info("item updated", "item_id", id)
	return nil
}

func (c *catalogCommandsImpl) UpsertItem(ctx context.Context, in UpsertItemInput) (uuid.UUID, error) {
	if in.ID == nil || *in.ID == uuid.Nil {
		return c.CreateItem(ctx, CreateItemInput{
			Name:     in.Name,
			Category: in.Category,
			ImageURL: in.ImageURL,
			Quantity: in.Quantity,
		})
	}

	now := c.now()
	id := *in.ID
	created := false
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Catalog().FindByID(ctx, id)
		switch {
		case errs.Is(err, item.ErrNotFound):
			it, berr := buildItem(id, CreateItemInput{
				Name:     in.Name,
				Category: in.Category,
				ImageURL: in.ImageURL,
				Quantity: in.Quantity,
			}, now)
			if berr != nil {
				return berr
			}
			if cerr := tx.Catalog().Create(ctx, it); cerr != nil {
				return cerr
			}
			created = true
			return enqueue(ctx, tx, shared.EventItemCreated, itemEvent(it, now), now)
		case err != nil:
			return err
		}

		delta, err := applyPatch(existing, ItemPatch{
			Name:     &in.Name,
			Category: &in.Category,
			ImageURL: &in.ImageURL,
			Quantity: &in.Quantity,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Catalog().Update(ctx, existing, delta); err != nil {
			return err
		}
		return enqueue(ctx, tx, shared.EventItemUpdated, itemEvent(existing, now), now)
	})
	if err != nil {
		return uuid.Nil, markKind(err)
	}

	c.logger.Info("item upserted", "item_id", id, "created", created)
	return id, nil
}

// DeleteItem removes the catalog entry only. Requests that reference the
// item keep their item name snapshot.
func (c *catalogCommandsImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	now := c.now()
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Catalog().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Catalog().Delete(ctx, id); err != nil {
			return err
		}
		return enqueue(ctx, tx, shared.EventItemDeleted, itemEvent(it, now), now)
	})
	if err != nil {
		return markKind(err)
	}

	c.logger.Info("item deleted", "item_id", id)
	return nil
}

func (c *catalogCommandsImpl) SeedCatalog(ctx context.Context) (int, error) {
	now := c.now()
	seeded := 0
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seeded = 0
		n, err := tx.Catalog().Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, in := range demoInventory {
			it, err := buildItem(uuid.Nil, in, now)
			if err != nil {
				return err
			}
			if err := tx.Catalog().Create(ctx, it); err != nil {
				return err
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return 0, markKind(err)
	}

	if seeded == 0 {
		c.logger.Info("catalog already populated, seed skipped")
	} else {
		c.logger.Info("catalog seeded", "items", seeded)
	}
	return seeded, nil
}

func (c *catalogCommandsImpl) now() time.Time {
	return c.clock.Now().UTC().Truncate(time.Microsecond)
}

// buildItem validates the input and returns a fresh item. A zero id gets a
// generated one.
func buildItem(id uuid.UUID, in CreateItemInput, now time.Time) (*item.Item, error) {
	name, err := item.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	category, err := item.NewCategory(in.Category)
	if err != nil {
		return nil, err
	}
	imageURL, err := item.NewImageURL(in.ImageURL)
	if err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, item.ErrNegativeQuantity
	}
	if id == uuid.Nil {
		return item.NewItem(name, category, imageURL, in.Quantity, now)
	}
	return item.ReconstructItem(id, name, category, imageURL, in.Quantity, in.Quantity, now, now)
}

// applyPatch mutates it in place and returns the signed quantity delta the
// store must apply to available as well.
func applyPatch(it *item.Item, p ItemPatch, now time.Time) (int, error) {
	if patch.Changed(p.Name, it.Name().String()) {
		name, err := item.NewName(*p.Name)
		if err != nil {
			return 0, err
		}
		it.Rename(name, now)
	}
	if patch.Changed(p.Category, it.Category().String()) {
		category, err := item.NewCategory(*p.Category)
		if err != nil {
			return 0, err
		}
		it.Recategorize(category, now)
	}
	if patch.Changed(p.ImageURL, it.ImageURL().String()) {
		imageURL, err := item.NewImageURL(*p.ImageURL)
		if err != nil {
			return 0, err
		}
		it.ChangeImage(imageURL, now)
	}

	delta := 0
	if patch.Changed(p.Quantity, it.Quantity()) {
		d, err := it.ChangeQuantity(patch.Coalesce(p.Quantity, it.Quantity()), now)
		if err != nil {
			return 0, err
		}
		delta = d
	}
	return delta, nil
}

func itemEvent(it *item.Item, now time.Time) shared.ItemEvent {
	return shared.ItemEvent{
		ItemID:     it.ID(),
		Name:       it.Name().String(),
		Quantity:   it.Quantity(),
		Available:  it.Available(),
		OccurredAt: now,
	}
}

const demoImageBase = "https://images.unsplash.com/"

var demoInventory = []CreateItemInput{
	{Name: "Arduino Uno R3", Category: "Microcontrollers", Quantity: 15, ImageURL: demoImageBase + "photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=200"},
	{Name: "Raspberry Pi 4", Category: "Microcomputers", Quantity: 5, ImageURL: demoImageBase + "photo-1587302912306-cf1ed9c33146?auto=format&fit=crop&q=80&w=200"},
	{Name: "Jumper Wires (M-M)", Category: "Components", Quantity: 50, ImageURL: demoImageBase + "photo-1620247526705-9008272fbd72?auto=format&fit=crop&q=80&w=200"},
	{Name: "Breadboard", Category: "Components", Quantity: 20, ImageURL: demoImageBase + "photo-1608564697071-f0911b93f1f7?auto=format&fit=crop&q=80&w=200"},
	{Name: "ESP32 Development Board", Category: "Microcontrollers", Quantity: 10, ImageURL: demoImageBase + "photo-1594814887372-9a367d3b2ec6?auto=format&fit=crop&q=80&w=200"},
	{Name: "Ultrasonic Distance Sensor (HC-SR04)", Category: "Sensors", Quantity: 20, ImageURL: demoImageBase + "photo-1581092160562-40aa08e78837?auto=format&fit=crop&q=80&w=200"},
	{Name: "PIR Motion Sensor", Category: "Sensors", Quantity: 15, ImageURL: demoImageBase + "photo-1631557088916-22a009bc2eb8?auto=format&fit=crop&q=80&w=200"},
	{Name: "Temperature & Humidity Sensor (DHT11)", Category: "Sensors", Quantity: 25, ImageURL: demoImageBase + "photo-1580828369019-2238c92a9526?auto=format&fit=crop&q=80&w=200"},
	{Name: "16x2 LCD Display", Category: "Displays", Quantity: 10, ImageURL: demoImageBase + "photo-1593344601445-6c7000cedff6?auto=format&fit=crop&q=80&w=200"},
	{Name: "9V Battery & Clip", Category: "Power", Quantity: 30, ImageURL: demoImageBase + "photo-1594944474327-14e30b3dd1d2?auto=format&fit=crop&q=80&w=200"},
	{Name: "Servo Motor (SG90)", Category: "Actuators", Quantity: 12, ImageURL: demoImageBase + "photo-1620283085439-3f6262b9a7be?auto=format&fit=crop&q=80&w=200"},
	{Name: "5V Relay Module (1 Channel)", Category: "Modules", Quantity: 15, ImageURL: demoImageBase + "photo-1533235658826-61327c5fbab8?auto=format&fit=crop&q=80&w=200"},
}
