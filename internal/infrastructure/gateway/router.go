package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	sharedCacheTTL = 60 // seconds, matches the in-process window
)

const projectQuery = `query getProject($id: String!) {
  projects(filters: {id: {equal: $id}}) {
    id
    name
    country
    stages {
      phase
    }
  }
}`

const assembliesQuery = `query getAssemblies($projectId: String!) {
  assemblies(projectId: $projectId) {
    id
    name
    description
    lifeTime
    unit
    conversionFactor
    layers {
      id
      name
      description
      conversionFactor
      referenceServiceLife
      unit
      transportType
      transportDistance
      transportUnit
      epd {
        id
        name
        declaredUnit
        version
        validUntil
        publishedDate
        source
        location
        subtype
        referenceServiceLife
        comment
        conversions {
          to
          value
        }
        gwp {
          a1a3
          c3
          c4
          d
        }
      }
    }
  }
}`

// RouterGateway resolves projects and assemblies from the federation
// router's GraphQL endpoint. Responses are cached for a minute in
// process and in memcached, shared across replicas.
type RouterGateway struct {
	endpoint string
	client   *http.Client
	cache    *cache.Cache
	mc       *memcache.Client
}

func NewRouterGateway(endpoint string, mc *memcache.Client) *RouterGateway {
	return &RouterGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultTimeout},
		cache:    cache.New(time.Minute, 2*time.Minute),
		mc:       mc,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (g *RouterGateway) GetProject(ctx context.Context, projectID, token string) (domain.Project, error) {
	cacheKey := "project:" + projectID

	var project domain.Project
	if found, err := g.lookup(cacheKey, &project); err == nil && found {
		return project, nil
	}

	var response struct {
		Projects []domain.Project `json:"projects"`
	}
	err := g.query(ctx, token, projectQuery, map[string]any{"id": projectID}, &response)
	if err != nil {
		return domain.Project{}, err
	}
	if len(response.Projects) == 0 {
		return domain.Project{}, domain.NotFoundError{Resource: "project " + projectID}
	}

	g.store(cacheKey, response.Projects[0])
	return response.Projects[0], nil
}

func (g *RouterGateway) GetAssemblies(ctx context.Context, projectID, token string) ([]domain.Assembly, error) {
	cacheKey := "assemblies:" + projectID

	var assemblies []domain.Assembly
	if found, err := g.lookup(cacheKey, &assemblies); err == nil && found {
		return assemblies, nil
	}

	var response struct {
		Assemblies []domain.Assembly `json:"assemblies"`
	}
	err := g.query(ctx, token, assembliesQuery, map[string]any{"projectId": projectID}, &response)
	if err != nil {
		return nil, err
	}

	g.store(cacheKey, response.Assemblies)
	return response.Assemblies, nil
}

func (g *RouterGateway) query(ctx context.Context, token, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return errors.Wrap(err, "failed to encode router query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create router request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.MicroserviceError{Service: "router", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.MicroserviceError{Service: "router", Message: "unexpected status " + resp.Status}
	}

	var envelope graphqlEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return domain.MicroserviceError{Service: "router", Message: "malformed response: " + err.Error()}
	}
	if len(envelope.Errors) > 0 {
		return domain.MicroserviceError{Service: "router", Message: envelope.Errors[0].Message}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return domain.MicroserviceError{Service: "router", Message: "malformed data: " + err.Error()}
	}
	return nil
}

// lookup consults the in-process cache first and memcached second.
func (g *RouterGateway) lookup(key string, out any) (bool, error) {
	if cached, found := g.cache.Get(key); found {
		data, ok := cached.([]byte)
		if !ok {
			return false, nil
		}
		return true, json.Unmarshal(data, out)
	}

	if g.mc == nil {
		return false, nil
	}
	item, err := g.mc.Get(key)
	if err != nil {
		return false, nil
	}
	g.cache.Set(key, item.Value, cache.DefaultExpiration)
	return true, json.Unmarshal(item.Value, out)
}

func (g *RouterGateway) store(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	g.cache.Set(key, data, cache.DefaultExpiration)
	if g.mc != nil {
		g.mc.Set(&memcache.Item{Key: key, Value: data, Expiration: sharedCacheTTL})
	}
}
