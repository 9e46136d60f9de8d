package client

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientCmdTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientCmdSuite(t *testing.T) {
	suite.Run(t, new(ClientCmdTestSuite))
}

var fakeNames = map[string]string{"1": "bulbasaur", "2": "ivysaur", "3": "venusaur"}

func (s *ClientCmdTestSuite) SetupTest() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/type/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results":[{"name":"grass","url":""},{"name":"shadow","url":""},{"name":"unknown","url":""}]}`)
	})
	mux.HandleFunc("/api/v2/type/grass/", func(w http.ResponseWriter, _ *http.Request) {
		base := s.server.URL + "/api/v2/pokemon/"
		fmt.Fprintf(w, `{"id":12,"name":"grass","pokemon":[
			{"slot":1,"pokemon":{"name":"bulbasaur","url":"%[1]s1/"}},
			{"slot":1,"pokemon":{"name":"missingno","url":"%[1]s404/"}},
			{"slot":1,"pokemon":{"name":"venusaur","url":"%[1]s3/"}}]}`, base)
	})
	mux.HandleFunc("/api/v2/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon/"), "/")
		name, ok := fakeNames[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"id":%s,"name":%q,"sprites":{"front_default":null},
			"types":[{"slot":1,"type":{"name":"grass","url":""}},{"slot":2,"type":{"name":"poison","url":""}}]}`, id, name)
	})
	s.server = httptest.NewServer(mux)
}

func (s *ClientCmdTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientCmdTestSuite) run(args ...string) (string, error) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--base-url", s.server.URL+"/api/v2/"))
	err := cmd.Execute()
	return out.String(), err
}

func (s *ClientCmdTestSuite) TestTypes() {
	out, err := s.run("types", "--show-excluded")
	s.Require().NoError(err)
	s.Contains(out, "Found 1 types:")
	s.Contains(out, "  Grass\n")
	s.Contains(out, "Excluded: [shadow unknown]")
}

func (s *ClientCmdTestSuite) TestRandomSeeded() {
	out, err := s.run("random", "--count", "3", "--id-space", "3", "--seed", "42")
	s.Require().NoError(err)
	s.Contains(out, "Your random Pokémon:")
	s.Contains(out, "#1 Bulbasaur (Grass, Poison)")
	s.Contains(out, "#2 Ivysaur (Grass, Poison)")
	s.Contains(out, "#3 Venusaur (Grass, Poison)")
}

func (s *ClientCmdTestSuite) TestRandomCountTooLarge() {
	_, err := s.run("random", "--count", "4", "--id-space", "3", "--seed", "1")
	s.Error(err)
}

func (s *ClientCmdTestSuite) TestByType() {
	out, err := s.run("by-type", "grass", "--cap", "3")
	s.Require().NoError(err)
	s.Contains(out, "Pokémon of type: Grass (2 of 3)")
	s.Contains(out, "#1 Bulbasaur")
	s.Contains(out, "#3 Venusaur")
	s.Contains(out, "skipped missingno")
}

func (s *ClientCmdTestSuite) TestByTypeRequiresArg() {
	_, err := s.run("by-type")
	s.Error(err)
}
