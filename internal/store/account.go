package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/eduvoyager/ent"
	"github.com/abhisek/eduvoyager/ent/account"
	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/roadmap"
)

// accountRepo implements AccountRepo backed by ent.
type accountRepo struct {
	client *ent.Client
}

func (r *accountRepo) Register(ctx context.Context, rec AccountRecord) (bool, error) {
	exists, err := r.client.Account.Query().
		Where(account.EmailEQ(rec.Profile.Email)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check account: %w", err)
	}
	if exists {
		return false, nil
	}

	stats, err := encodeJSONMap(rec.Stats)
	if err != nil {
		return false, fmt.Errorf("encode stats: %w", err)
	}

	create := r.client.Account.Create().
		SetEmail(rec.Profile.Email).
		SetFirstName(rec.Profile.FirstName).
		SetLastName(rec.Profile.LastName).
		SetDesignation(rec.Profile.Designation).
		SetEducationStage(account.EducationStage(rec.Profile.EducationStage)).
		SetAge(rec.Profile.Age).
		SetPassword(rec.Password).
		SetStats(stats)

	if rec.CurrentRoadmap != nil {
		rm, err := encodeJSONMap(rec.CurrentRoadmap)
		if err != nil {
			return false, fmt.Errorf("encode roadmap: %w", err)
		}
		create = create.SetCurrentRoadmap(rm)
	}
	if len(rec.History) > 0 {
		hist, err := encodeHistory(rec.History)
		if err != nil {
			return false, fmt.Errorf("encode history: %w", err)
		}
		create = create.SetRoadmapHistory(hist)
	}

	if _, err := create.Save(ctx); err != nil {
		return false, fmt.Errorf("create account: %w", err)
	}
	return true, nil
}

func (r *accountRepo) Authenticate(ctx context.Context, email, password string) (*AccountRecord, error) {
	rec, err := r.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Password != password {
		return nil, nil
	}
	return rec, nil
}

func (r *accountRepo) Get(ctx context.Context, email string) (*AccountRecord, error) {
	a, err := r.client.Account.Query().
		Where(account.EmailEQ(email)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query account: %w", err)
	}
	return recordFromEnt(a)
}

func (r *accountRepo) SaveProgress(ctx context.Context, email string, stats learner.Stats, rm *roadmap.Roadmap, history []roadmap.Roadmap) error {
	statsMap, err := encodeJSONMap(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	hist, err := encodeHistory(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	upd := r.client.Account.Update().
		Where(account.EmailEQ(email)).
		SetStats(statsMap).
		SetRoadmapHistory(hist)

	if rm != nil {
		rmMap, err := encodeJSONMap(rm)
		if err != nil {
			return fmt.Errorf("encode roadmap: %w", err)
		}
		upd = upd.SetCurrentRoadmap(rmMap)
	} else {
		upd = upd.ClearCurrentRoadmap()
	}

	// Zero rows updated means the account is gone; that is a no-op, not
	// an error.
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *accountRepo) ReplaceStats(ctx context.Context, email string, stats learner.Stats) error {
	statsMap, err := encodeJSONMap(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	_, err = r.client.Account.Update().
		Where(account.EmailEQ(email)).
		SetStats(statsMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("replace stats: %w", err)
	}
	return nil
}

func (r *accountRepo) ReplaceRoadmap(ctx context.Context, email string, rm *roadmap.Roadmap) error {
	upd := r.client.Account.Update().Where(account.EmailEQ(email))
	if rm != nil {
		rmMap, err := encodeJSONMap(rm)
		if err != nil {
			return fmt.Errorf("encode roadmap: %w", err)
		}
		upd = upd.SetCurrentRoadmap(rmMap)
	} else {
		upd = upd.ClearCurrentRoadmap()
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("replace roadmap: %w", err)
	}
	return nil
}

func (r *accountRepo) ReplaceHistory(ctx context.Context, email string, history []roadmap.Roadmap) error {
	hist, err := encodeHistory(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	_, err = r.client.Account.Update().
		Where(account.EmailEQ(email)).
		SetRoadmapHistory(hist).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

func (r *accountRepo) Delete(ctx context.Context, email string) error {
	_, err := r.client.Account.Delete().
		Where(account.EmailEQ(email)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// recordFromEnt decodes the JSON blobs of an ent row into domain types.
func recordFromEnt(a *ent.Account) (*AccountRecord, error) {
	rec := &AccountRecord{
		Profile: learner.Profile{
			Email:          a.Email,
			FirstName:      a.FirstName,
			LastName:       a.LastName,
			Designation:    a.Designation,
			EducationStage: learner.EducationStage(a.EducationStage),
			Age:            a.Age,
		},
		Password: a.Password,
	}

	if err := decodeJSONMap(a.Stats, &rec.Stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	if a.CurrentRoadmap != nil {
		var rm roadmap.Roadmap
		if err := decodeJSONMap(a.CurrentRoadmap, &rm); err != nil {
			return nil, fmt.Errorf("decode roadmap: %w", err)
		}
		rec.CurrentRoadmap = &rm
	}
	for i, h := range a.RoadmapHistory {
		var rm roadmap.Roadmap
		if err := decodeJSONMap(h, &rm); err != nil {
			return nil, fmt.Errorf("decode history[%d]: %w", i, err)
		}
		rec.History = append(rec.History, rm)
	}
	return rec, nil
}

// encodeJSONMap round-trips a domain value into the generic map shape the
// ent JSON columns store. Field names follow the domain types' JSON tags,
// which match the export format of the original web client.
func encodeJSONMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeJSONMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func encodeHistory(history []roadmap.Roadmap) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(history))
	for _, rm := range history {
		m, err := encodeJSONMap(rm)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
