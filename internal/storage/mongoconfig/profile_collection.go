package mongoconfig

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const profileCollectionName = "profile"

var _ IProfileCollection = (*ProfileCollection)(nil)

type ProfileCollection struct {
	coll *mongo.Collection
}

func NewProfileCollection(db *mongo.Database) *ProfileCollection {
	return &ProfileCollection{coll: db.Collection(profileCollectionName)}
}

func (p *ProfileCollection) Find(ctx context.Context) (*Profile, error) {
	var profile Profile
	err := p.coll.FindOne(ctx, bson.M{"_id": ProfileKey}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *ProfileCollection) EnsureDefault(ctx context.Context, defaults *Profile) (*Profile, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"name":       defaults.Name,
		"currency":   defaults.Currency,
		"dark_mode":  defaults.DarkMode,
		"categories": defaults.Categories,
		"onboarded":  defaults.Onboarded,
	}}
	opts := options.UpdateOne().SetUpsert(true)

	if _, err := p.coll.UpdateOne(ctx, bson.M{"_id": ProfileKey}, update, opts); err != nil {
		return nil, err
	}
	return p.Find(ctx)
}

func (p *ProfileCollection) Update(ctx context.Context, update *ProfileUpdate) error {
	setFields := buildProfileSetFields(update)
	if len(setFields) == 0 {
		return nil
	}
	opts := options.UpdateOne().SetUpsert(true)

	_, err := p.coll.UpdateOne(ctx, bson.M{"_id": ProfileKey}, bson.M{"$set": setFields}, opts)
	return err
}

func (p *ProfileCollection) Count(ctx context.Context) (int64, error) {
	return p.coll.CountDocuments(ctx, bson.M{})
}

// buildProfileSetFields translates a partial update into $set fields,
// skipping anything the caller did not provide.
func buildProfileSetFields(update *ProfileUpdate) bson.M {
	setFields := bson.M{}
	if update == nil {
		return setFields
	}

	if update.Name != nil {
		setFields["name"] = *update.Name
	}
	if update.Currency != nil {
		setFields["currency"] = *update.Currency
	}
	if update.DarkMode != nil {
		setFields["dark_mode"] = *update.DarkMode
	}
	if update.Categories != nil {
		setFields["categories"] = update.Categories
	}
	if update.Onboarded != nil {
		setFields["onboarded"] = *update.Onboarded
	}
	return setFields
}
