package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"followup_tracker/internal/api"
	"followup_tracker/internal/model"
	"followup_tracker/internal/normalize"
)

var ErrConvertNotFound = errors.New("convert record not found in response")

// ConvertService provides CRUD and progress operations on converts.
type ConvertService interface {
	List(ctx context.Context, page int, search string, filters map[string]string) ([]model.Convert, error)
	Create(ctx context.Context, convert model.Convert) (*model.Convert, error)
	Get(ctx context.Context, id string) (*model.Convert, error)
	Update(ctx context.Context, id string, convert model.Convert) (*model.Convert, error)
	ToggleVisit(ctx context.Context, id string, visitNumber int) error
	UpdateMilestones(ctx context.Context, id string, update model.MilestoneUpdate) error
}

type convertService struct {
	gw *api.Gateway
}

// NewConvertService creates a new ConvertService.
func NewConvertService(gw *api.Gateway) ConvertService {
	return &convertService{gw: gw}
}

// List fetches a page of converts matching the search query. Older server
// versions read "keyword"/"pageNumber" instead of "search"/"page", so both
// spellings are always sent.
func (s *convertService) List(ctx context.Context, page int, search string, filters map[string]string) ([]model.Convert, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageNumber", strconv.Itoa(page))
	params.Set("search", search)
	params.Set("keyword", search)
	for key, value := range filters {
		params.Set(key, value)
	}

	var payload any
	if err := s.gw.Get(ctx, "/converts", params, &payload); err != nil {
		return nil, err
	}

	converts := normalize.ExtractListAs[model.Convert](payload)
	for i := range converts {
		converts[i].NormalizeID()
	}
	return converts, nil
}

func (s *convertService) Create(ctx context.Context, convert model.Convert) (*model.Convert, error) {
	var payload any
	if err := s.gw.Post(ctx, "/converts", convert, &payload); err != nil {
		return nil, err
	}
	return decodeConvert(payload)
}

func (s *convertService) Get(ctx context.Context, id string) (*model.Convert, error) {
	var payload any
	if err := s.gw.Get(ctx, "/converts/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return decodeConvert(payload)
}

func (s *convertService) Update(ctx context.Context, id string, convert model.Convert) (*model.Convert, error) {
	var payload any
	if err := s.gw.Put(ctx, "/converts/"+id, convert, &payload); err != nil {
		return nil, err
	}
	return decodeConvert(payload)
}

// ToggleVisit flips the completion state of one follow-up visit. The
// server owns the resulting state; callers refetch the convert afterwards.
func (s *convertService) ToggleVisit(ctx context.Context, id string, visitNumber int) error {
	path := fmt.Sprintf("/converts/%s/visits/%d", id, visitNumber)
	return s.gw.Patch(ctx, path, nil, nil)
}

func (s *convertService) UpdateMilestones(ctx context.Context, id string, update model.MilestoneUpdate) error {
	return s.gw.Patch(ctx, "/converts/"+id+"/milestones", update, nil)
}

// decodeConvert unwraps a convert record that may arrive bare or nested
// under "convert"/"data".
func decodeConvert(payload any) (*model.Convert, error) {
	candidate := payload
	if root, ok := payload.(map[string]any); ok {
		for _, key := range []string{"convert", "data"} {
			if inner, ok := root[key].(map[string]any); ok {
				candidate = inner
				break
			}
		}
	}

	var convert model.Convert
	if err := normalize.Rebind(candidate, &convert); err != nil {
		return nil, ErrConvertNotFound
	}
	convert.NormalizeID()
	if convert.ID == "" && convert.Name == "" {
		return nil, ErrConvertNotFound
	}
	return &convert, nil
}
