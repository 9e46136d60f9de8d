package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/andresmatiasescobar/pokedex/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client Client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.ctx = context.Background()

	c, err := New(&Config{BaseURL: s.server.URL + "/api/v2"})
	s.Require().NoError(err)
	s.client = c
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestListTypes() {
	s.mux.HandleFunc("/api/v2/type/", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		fmt.Fprint(w, `{"count":3,"results":[
			{"name":"normal","url":"https://pokeapi.co/api/v2/type/1/"},
			{"name":"fire","url":"https://pokeapi.co/api/v2/type/10/"},
			{"name":"unknown","url":"https://pokeapi.co/api/v2/type/10001/"}]}`)
	})

	types, err := s.client.ListTypes(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"normal", "fire", "unknown"}, TypeNames(types))
}

func (s *ClientTestSuite) TestGetType() {
	s.mux.HandleFunc("/api/v2/type/fire/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":10,"name":"fire","pokemon":[
			{"slot":1,"pokemon":{"name":"charmander","url":"https://pokeapi.co/api/v2/pokemon/4/"}},
			{"slot":1,"pokemon":{"name":"charmeleon","url":"https://pokeapi.co/api/v2/pokemon/5/"}}]}`)
	})

	data, err := s.client.GetType(s.ctx, "fire")
	s.Require().NoError(err)
	s.Equal("fire", data.Name)
	s.Require().Len(data.Pokemon, 2)
	s.Equal("charmander", data.Pokemon[0].Pokemon.Name)
	s.Equal("https://pokeapi.co/api/v2/pokemon/5/", data.Pokemon[1].Pokemon.URL)
}

func (s *ClientTestSuite) TestGetPokemon() {
	s.mux.HandleFunc("/api/v2/pokemon/6/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":6,"name":"charizard",
			"sprites":{"front_default":"https://sprites/6.png"},
			"types":[{"slot":1,"type":{"name":"fire","url":""}},{"slot":2,"type":{"name":"flying","url":""}}]}`)
	})

	data, err := s.client.GetPokemon(s.ctx, "6")
	s.Require().NoError(err)

	p := ToPokemon(data)
	s.Equal(6, p.ID)
	s.Equal("charizard", p.Name)
	s.Equal("https://sprites/6.png", p.ImageURL)
	s.Equal([]string{"fire", "flying"}, p.Types)
}

func (s *ClientTestSuite) TestGetPokemonNullSprite() {
	s.mux.HandleFunc("/api/v2/pokemon/10001/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":10001,"name":"deoxys-attack","sprites":{"front_default":null},"types":[{"slot":1,"type":{"name":"psychic"}}]}`)
	})

	data, err := s.client.GetPokemon(s.ctx, "10001")
	s.Require().NoError(err)
	s.False(ToPokemon(data).HasImage())
}

func (s *ClientTestSuite) TestNonSuccessStatusIsFetchError() {
	s.mux.HandleFunc("/api/v2/pokemon/4/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	_, err := s.client.GetPokemon(s.ctx, "4")
	s.Require().Error(err)
	s.True(IsFetchError(err))
	s.Equal(http.StatusNotFound, Status(err))
	s.Equal("Not Found", StatusText(err))
	s.Equal(s.server.URL+"/api/v2/pokemon/4/", errors.GetMeta(err)["url"])
}

func (s *ClientTestSuite) TestInvalidBodyIsFetchError() {
	s.mux.HandleFunc("/api/v2/type/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[`)
	})

	_, err := s.client.ListTypes(s.ctx)
	s.Require().Error(err)
	s.True(IsFetchError(err))
	s.Equal("invalid response body", StatusText(err))
}

func (s *ClientTestSuite) TestTransportErrorIsFetchError() {
	s.server.Close()

	_, err := s.client.GetPokemon(s.ctx, "1")
	s.Require().Error(err)
	s.True(IsFetchError(err))
	s.Equal(0, Status(err))
}

func (s *ClientTestSuite) TestEmptyArguments() {
	_, err := s.client.GetType(s.ctx, " ")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.GetPokemon(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.GetPokemonByURL(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.NotNil(t, cfg.Logger)

	_, err := New(&Config{BaseURL: "not a url"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestStatusTextWithoutMeta(t *testing.T) {
	assert.Equal(t, "", StatusText(nil))
	assert.Equal(t, "boom", StatusText(errors.Internal("boom")))
	assert.Equal(t, 0, Status(errors.Internal("boom")))
}
