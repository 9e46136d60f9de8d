package sampler

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/andresmatiasescobar/pokedex/internal/clients/pokeapi"
	pokeapimock "github.com/andresmatiasescobar/pokedex/internal/clients/pokeapi/mock"
	"github.com/andresmatiasescobar/pokedex/internal/errors"
	"github.com/andresmatiasescobar/pokedex/internal/pkg/idgen"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	ctx        context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newService(cfg *Config) Service {
	if cfg.Client == nil {
		cfg.Client = s.mockClient
	}
	svc, err := NewOrchestrator(cfg)
	s.Require().NoError(err)
	return svc
}

func detail(id int, name string, types ...string) *pokeapi.PokemonData {
	sprite := fmt.Sprintf("https://sprites/%d.png", id)
	data := &pokeapi.PokemonData{
		ID:      id,
		Name:    name,
		Sprites: pokeapi.Sprites{FrontDefault: &sprite},
	}
	for i, t := range types {
		data.Types = append(data.Types, &pokeapi.PokemonType{Slot: i + 1, Type: pokeapi.NamedResource{Name: t}})
	}
	return data
}

func memberURL(i int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", i)
}

func roster(typeName string, n int) *pokeapi.TypeData {
	data := &pokeapi.TypeData{Name: typeName}
	for i := 1; i <= n; i++ {
		data.Pokemon = append(data.Pokemon, &pokeapi.TypeMember{
			Slot:    1,
			Pokemon: pokeapi.NamedResource{Name: fmt.Sprintf("%s-%d", typeName, i), URL: memberURL(i)},
		})
	}
	return data
}

func notFound(url string) error {
	return errors.Unavailable("GET " + url + ": Not Found").
		WithMeta("status", 404).
		WithMeta("status_text", "Not Found")
}

func (s *OrchestratorTestSuite) TestRandomSample_AllSucceed() {
	svc := s.newService(&Config{Drawer: idgen.NewSeeded(7)})
	expected, err := idgen.Distinct(idgen.NewSeeded(7), DefaultSampleSize, DefaultIDSpace)
	s.Require().NoError(err)

	calls := make([]any, 0, len(expected))
	for _, id := range expected {
		calls = append(calls, s.mockClient.EXPECT().
			GetPokemon(s.ctx, strconv.Itoa(id)).
			Return(detail(id, fmt.Sprintf("pokemon-%d", id), "normal"), nil))
	}
	gomock.InOrder(calls...)

	out, err := svc.FetchRandomSample(s.ctx, &FetchRandomSampleInput{})
	s.Require().NoError(err)
	s.Equal(expected, out.IDs)
	s.Require().Len(out.Pokemon, 7)

	seen := map[int]bool{}
	for i, p := range out.Pokemon {
		s.Equal(expected[i], p.ID)
		s.NotEmpty(p.Name)
		s.NotEmpty(p.Types)
		s.False(seen[p.ID])
		seen[p.ID] = true
		s.GreaterOrEqual(p.ID, 1)
		s.LessOrEqual(p.ID, DefaultIDSpace)
	}
}

func (s *OrchestratorTestSuite) TestRandomSample_FourthFails() {
	svc := s.newService(&Config{Drawer: idgen.NewSeeded(99)})
	ids, err := idgen.Distinct(idgen.NewSeeded(99), DefaultSampleSize, DefaultIDSpace)
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockClient.EXPECT().GetPokemon(s.ctx, strconv.Itoa(ids[0])).Return(detail(ids[0], "a", "fire"), nil),
		s.mockClient.EXPECT().GetPokemon(s.ctx, strconv.Itoa(ids[1])).Return(detail(ids[1], "b", "fire"), nil),
		s.mockClient.EXPECT().GetPokemon(s.ctx, strconv.Itoa(ids[2])).Return(detail(ids[2], "c", "fire"), nil),
		s.mockClient.EXPECT().GetPokemon(s.ctx, strconv.Itoa(ids[3])).Return(nil, notFound(memberURL(ids[3]))),
	)

	out, err := svc.FetchRandomSample(s.ctx, &FetchRandomSampleInput{})
	s.Nil(out)
	s.Require().Error(err)
	s.True(pokeapi.IsFetchError(err))
	s.Equal(fmt.Sprintf("failed to load pokemon with ID %d: Not Found", ids[3]), errors.GetMessage(err))
	s.Equal(ids[3], errors.GetMeta(err)["id"])
}

func (s *OrchestratorTestSuite) TestRandomSample_SameSeedSameIDs() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*pokeapi.PokemonData, error) {
			n, _ := strconv.Atoi(id)
			return detail(n, id, "grass"), nil
		}).Times(6)

	first, err := s.newService(&Config{Drawer: idgen.NewSeeded(5)}).
		FetchRandomSample(s.ctx, &FetchRandomSampleInput{Count: 3})
	s.Require().NoError(err)
	second, err := s.newService(&Config{Drawer: idgen.NewSeeded(5)}).
		FetchRandomSample(s.ctx, &FetchRandomSampleInput{Count: 3})
	s.Require().NoError(err)

	s.Equal(first.IDs, second.IDs)
}

func (s *OrchestratorTestSuite) TestRandomSample_InvalidCount() {
	svc := s.newService(&Config{Drawer: idgen.NewSeeded(1)})

	_, err := svc.FetchRandomSample(s.ctx, &FetchRandomSampleInput{Count: 10, IDSpace: 5})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.FetchRandomSample(s.ctx, &FetchRandomSampleInput{Count: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestByType_CapApplied() {
	svc := s.newService(&Config{})

	s.mockClient.EXPECT().GetType(s.ctx, "fire").Return(roster("fire", 25), nil)
	for i := 1; i <= DefaultTypeCap; i++ {
		s.mockClient.EXPECT().GetPokemonByURL(s.ctx, memberURL(i)).
			Return(detail(i, fmt.Sprintf("fire-%d", i), "fire"), nil)
	}

	out, err := svc.FetchByType(s.ctx, &FetchByTypeInput{Type: "fire"})
	s.Require().NoError(err)
	s.Equal(25, out.Members)
	s.Empty(out.Skipped)
	s.Require().Len(out.Pokemon, 20)
	for i, p := range out.Pokemon {
		s.Equal(i+1, p.ID)
		s.Equal([]string{"fire"}, p.Types)
	}
}

func (s *OrchestratorTestSuite) TestByType_FailedMembersDropped() {
	svc := s.newService(&Config{})

	s.mockClient.EXPECT().GetType(s.ctx, "water").Return(roster("water", 10), nil)
	for i := 1; i <= 10; i++ {
		call := s.mockClient.EXPECT().GetPokemonByURL(s.ctx, memberURL(i))
		if i == 3 || i == 8 {
			call.Return(nil, notFound(memberURL(i)))
			continue
		}
		call.Return(detail(i, fmt.Sprintf("water-%d", i), "water"), nil)
	}

	out, err := svc.FetchByType(s.ctx, &FetchByTypeInput{Type: "water"})
	s.Require().NoError(err)
	s.Require().Len(out.Pokemon, 8)
	s.Equal([]string{"water-3", "water-8"}, out.Skipped)

	ids := make([]int, len(out.Pokemon))
	for i, p := range out.Pokemon {
		ids[i] = p.ID
	}
	s.Equal([]int{1, 2, 4, 5, 6, 7, 9, 10}, ids)
}

func (s *OrchestratorTestSuite) TestByType_NilRosterEntryNotSkipped() {
	svc := s.newService(&Config{})

	data := roster("grass", 3)
	data.Pokemon[1] = nil
	s.mockClient.EXPECT().GetType(s.ctx, "grass").Return(data, nil)
	s.mockClient.EXPECT().GetPokemonByURL(s.ctx, memberURL(1)).Return(detail(1, "grass-1", "grass"), nil)
	s.mockClient.EXPECT().GetPokemonByURL(s.ctx, memberURL(3)).Return(nil, notFound(memberURL(3)))

	out, err := svc.FetchByType(s.ctx, &FetchByTypeInput{Type: "grass"})
	s.Require().NoError(err)
	s.Require().Len(out.Pokemon, 1)
	s.Equal("grass-1", out.Pokemon[0].Name)
	s.Equal([]string{"grass-3"}, out.Skipped)
	s.Equal(3, out.Members)
}

func (s *OrchestratorTestSuite) TestByType_RosterFailureAborts() {
	svc := s.newService(&Config{})

	s.mockClient.EXPECT().GetType(s.ctx, "dragon").Return(nil, notFound("type/dragon/"))

	out, err := svc.FetchByType(s.ctx, &FetchByTypeInput{Type: "dragon"})
	s.Nil(out)
	s.True(pokeapi.IsFetchError(err))
	s.Equal("failed to load pokemon of type dragon: Not Found", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestByType_FewerMembersThanCap() {
	svc := s.newService(&Config{})

	s.mockClient.EXPECT().GetType(s.ctx, "ice").Return(roster("ice", 2), nil)
	s.mockClient.EXPECT().GetPokemonByURL(s.ctx, memberURL(1)).Return(detail(1, "ice-1", "ice"), nil)
	s.mockClient.EXPECT().GetPokemonByURL(s.ctx, memberURL(2)).Return(detail(2, "ice-2", "ice"), nil)

	out, err := svc.FetchByType(s.ctx, &FetchByTypeInput{Type: "ice", Cap: 5})
	s.Require().NoError(err)
	s.Len(out.Pokemon, 2)
}

func (s *OrchestratorTestSuite) TestByType_BoundedConcurrencyKeepsOrder() {
	svc := s.newService(&Config{DetailConcurrency: 2})

	var inFlight, peak int32
	s.mockClient.EXPECT().GetType(s.ctx, "rock").Return(roster("rock", 8), nil)
	s.mockClient.EXPECT().GetPokemonByURL(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, url string) (*pokeapi.PokemonData, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)

			var id int
			_, _ = fmt.Sscanf(url, "https://pokeapi.co/api/v2/pokemon/%d/", &id)
			return detail(id, url, "rock"), nil
		}).Times(8)

	out, err := svc.FetchByType(s.ctx, &FetchByTypeInput{Type: "rock"})
	s.Require().NoError(err)
	s.Require().Len(out.Pokemon, 8)
	for i, p := range out.Pokemon {
		s.Equal(i+1, p.ID)
	}
	s.LessOrEqual(atomic.LoadInt32(&peak), int32(2))
}

func (s *OrchestratorTestSuite) TestByType_InvalidInput() {
	svc := s.newService(&Config{})

	_, err := svc.FetchByType(s.ctx, &FetchByTypeInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.FetchByType(s.ctx, &FetchByTypeInput{Type: "fire", Cap: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := NewOrchestrator(&Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = NewOrchestrator(&Config{Client: s.mockClient, DetailConcurrency: -1})
	s.True(errors.IsInvalidArgument(err))
}
