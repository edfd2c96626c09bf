package couch

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Task describes an active task running on the instance, such as a continuous
// replication or a compaction.
type Task map[string]interface{}

// ServerInfo is the instance's greeting.
type ServerInfo struct {
	CouchDB string `json:"couchdb"`
	Version string `json:"version"`
}

// Version fetches the instance's version greeting.
func (s *Server) Version(ctx context.Context) (*ServerInfo, error) {
	info := new(ServerInfo)
	err := s.do(ctx, "", &options{method: http.MethodGet},
		expect(func(r *response) error {
			return r.decode(info)
		}, OK))
	if err != nil {
		return nil, err
	}
	return info, nil
}

// AllDBs lists every database on the instance.
func (s *Server) AllDBs(ctx context.Context) ([]string, error) {
	var names []string
	err := s.do(ctx, "_all_dbs", &options{method: http.MethodGet},
		expect(func(r *response) error {
			return r.decode(&names)
		}, OK))
	return names, err
}

// Stats fetches the instance's statistics.
func (s *Server) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := map[string]interface{}{}
	err := s.do(ctx, "_stats", &options{method: http.MethodGet},
		expect(func(r *response) error {
			return r.decode(&stats)
		}, OK))
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ActiveTasks lists the tasks currently running on the instance.
func (s *Server) ActiveTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := s.do(ctx, "_active_tasks", &options{method: http.MethodGet},
		expect(func(r *response) error {
			return r.decode(&tasks)
		}, OK))
	return tasks, err
}

// Config fetches the instance's configuration.
func (s *Server) Config(ctx context.Context) (map[string]interface{}, error) {
	config := map[string]interface{}{}
	err := s.do(ctx, "_config", &options{method: http.MethodGet},
		expect(func(r *response) error {
			return r.decode(&config)
		}, OK))
	if err != nil {
		return nil, err
	}
	return config, nil
}

// UUIDs asks the server for count fresh unique identifiers, usable as
// document ids.
func (s *Server) UUIDs(ctx context.Context, count int) ([]string, error) {
	opt := &options{
		method: http.MethodGet,
		query:  url.Values{"count": []string{strconv.Itoa(count)}},
	}
	var result struct {
		UUIDs []string `json:"uuids"`
	}
	err := s.do(ctx, "_uuids", opt,
		expect(func(r *response) error {
			return r.decode(&result)
		}, OK))
	return result.UUIDs, err
}
