// Copyright (c) 2026 Momento, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package leaderboard

import (
	"context"
	"math"
	"net"
	"sort"
	"sync"
	"testing"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/internal/channel"
	"github.com/momentohq/momento-go/internal/protos/leaderboardpb"
	"github.com/momentohq/momento-go/momentoerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// fakeLeaderboardServer keeps leaderboards as in-memory score maps and
// ranks them on demand.
type fakeLeaderboardServer struct {
	leaderboardpb.UnimplementedLeaderboardServer

	mu     sync.Mutex
	boards map[string]map[uint32]float64
}

func newFakeLeaderboardServer() *fakeLeaderboardServer {
	return &fakeLeaderboardServer{boards: make(map[string]map[uint32]float64)}
}

func (s *fakeLeaderboardServer) ranked(board string, order leaderboardpb.Order) []*leaderboardpb.RankedElement {
	elements := make([]*leaderboardpb.RankedElement, 0, len(s.boards[board]))
	for id, score := range s.boards[board] {
		elements = append(elements, &leaderboardpb.RankedElement{Id: id, Score: score})
	}
	sort.Slice(elements, func(i, j int) bool {
		if order == leaderboardpb.Order_Descending {
			return elements[i].Score > elements[j].Score
		}
		return elements[i].Score < elements[j].Score
	})
	for rank, element := range elements {
		element.Rank = uint32(rank)
	}
	return elements
}

func (s *fakeLeaderboardServer) UpsertElements(ctx context.Context, request *leaderboardpb.UpsertElementsRequest) (*leaderboardpb.UpsertElementsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board := s.boards[request.GetLeaderboard()]
	if board == nil {
		board = make(map[uint32]float64)
		s.boards[request.GetLeaderboard()] = board
	}
	for _, element := range request.GetElements() {
		board[element.GetId()] = element.GetScore()
	}
	return &leaderboardpb.UpsertElementsResponse{}, nil
}

func (s *fakeLeaderboardServer) GetRank(ctx context.Context, request *leaderboardpb.GetRankRequest) (*leaderboardpb.GetRankResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[uint32]struct{}, len(request.GetIds()))
	for _, id := range request.GetIds() {
		wanted[id] = struct{}{}
	}
	response := &leaderboardpb.GetRankResponse{}
	for _, element := range s.ranked(request.GetLeaderboard(), request.GetOrder()) {
		if _, ok := wanted[element.GetId()]; ok {
			response.Elements = append(response.Elements, element)
		}
	}
	return response, nil
}

func (s *fakeLeaderboardServer) FetchByScore(ctx context.Context, request *leaderboardpb.FetchByScoreRequest) (*leaderboardpb.FetchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scoreRange := request.GetScoreRange()
	response := &leaderboardpb.FetchResponse{}
	skipped := uint32(0)
	for _, element := range s.ranked(request.GetLeaderboard(), request.GetOrder()) {
		if !scoreRange.GetUnboundedMin() && element.GetScore() < scoreRange.GetMinInclusive() {
			continue
		}
		if !scoreRange.GetUnboundedMax() && element.GetScore() >= scoreRange.GetMaxExclusive() {
			continue
		}
		if skipped < request.GetOffset() {
			skipped++
			continue
		}
		response.Elements = append(response.Elements, element)
		if request.GetCount() != 0 && uint32(len(response.Elements)) == request.GetCount() {
			break
		}
	}
	return response, nil
}

func (s *fakeLeaderboardServer) RemoveElements(ctx context.Context, request *leaderboardpb.RemoveElementsRequest) (*leaderboardpb.RemoveElementsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range request.GetIds() {
		delete(s.boards[request.GetLeaderboard()], id)
	}
	return &leaderboardpb.RemoveElementsResponse{}, nil
}

func (s *fakeLeaderboardServer) DeleteLeaderboard(ctx context.Context, request *leaderboardpb.DeleteLeaderboardRequest) (*leaderboardpb.DeleteLeaderboardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, request.GetLeaderboard())
	return &leaderboardpb.DeleteLeaderboardResponse{}, nil
}

func newTestLeaderboard(t *testing.T) *Leaderboard {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := grpc.NewServer()
	leaderboardpb.RegisterLeaderboardServer(server, newFakeLeaderboardServer())
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	grpcConfig := config.Laptop().TransportStrategy().GrpcConfiguration()
	conn, err := channel.Dial(listener.Addr().String(), "test-auth-token", "go:leaderboard:test", grpcConfig, zap.NewNop())
	require.NoError(t, err)

	client := &Client{
		dataPool:      channel.NewPool([]*grpc.ClientConn{conn}),
		controlConn:   conn,
		configuration: config.Laptop(),
		logger:        zap.NewNop(),
	}
	t.Cleanup(func() { _ = conn.Close() })

	board, err := client.Leaderboard("test-cache", "test-board")
	require.NoError(t, err)
	return board
}

func TestUpsertAndGetRank(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, board.Upsert(ctx, []Element{
		{ID: 1, Score: 10},
		{ID: 2, Score: 30},
		{ID: 3, Score: 20},
	}))

	ranked, err := board.GetRank(ctx, []uint32{1, 2, 3}, Ascending)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, RankedElement{ID: 1, Rank: 0, Score: 10}, ranked[0])
	assert.Equal(t, RankedElement{ID: 3, Rank: 1, Score: 20}, ranked[1])
	assert.Equal(t, RankedElement{ID: 2, Rank: 2, Score: 30}, ranked[2])

	ranked, err = board.GetRank(ctx, []uint32{2}, Descending)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, RankedElement{ID: 2, Rank: 0, Score: 30}, ranked[0])
}

func TestUpsertOverwritesScore(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, board.Upsert(ctx, []Element{{ID: 1, Score: 10}}))
	require.NoError(t, board.Upsert(ctx, []Element{{ID: 1, Score: 99}}))

	ranked, err := board.GetRank(ctx, []uint32{1}, Ascending)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 99.0, ranked[0].Score)
}

func TestFetchByScore(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, board.Upsert(ctx, []Element{
		{ID: 1, Score: 10},
		{ID: 2, Score: 20},
		{ID: 3, Score: 30},
		{ID: 4, Score: 40},
	}))

	min, max := 20.0, 40.0
	ranked, err := board.FetchByScore(ctx, &FetchByScoreRequest{
		ScoreRange: &ScoreRange{Min: &min, Max: &max},
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, uint32(2), ranked[0].ID)
	assert.Equal(t, uint32(3), ranked[1].ID)

	// Nil range spans everything.
	ranked, err = board.FetchByScore(ctx, &FetchByScoreRequest{})
	require.NoError(t, err)
	assert.Len(t, ranked, 4)

	// Offset and count page through the range.
	ranked, err = board.FetchByScore(ctx, &FetchByScoreRequest{Offset: 1, Count: 2})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, uint32(2), ranked[0].ID)
	assert.Equal(t, uint32(3), ranked[1].ID)
}

func TestFetchByScoreNonFiniteBoundsAreUnbounded(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, board.Upsert(ctx, []Element{
		{ID: 1, Score: 10},
		{ID: 2, Score: 20},
	}))

	min, max := math.Inf(-1), math.NaN()
	ranked, err := board.FetchByScore(ctx, &FetchByScoreRequest{
		ScoreRange: &ScoreRange{Min: &min, Max: &max},
	})
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}

func TestRemoveElements(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, board.Upsert(ctx, []Element{
		{ID: 1, Score: 10},
		{ID: 2, Score: 20},
	}))
	require.NoError(t, board.RemoveElements(ctx, []uint32{1, 7}))

	ranked, err := board.GetRank(ctx, []uint32{1, 2}, Ascending)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, uint32(2), ranked[0].ID)
}

func TestDelete(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, board.Upsert(ctx, []Element{{ID: 1, Score: 10}}))
	require.NoError(t, board.Delete(ctx))

	ranked, err := board.FetchByScore(ctx, &FetchByScoreRequest{})
	require.NoError(t, err)
	assert.Empty(t, ranked)

	// Deleting again still succeeds.
	require.NoError(t, board.Delete(ctx))
}

func TestEmptyArgumentsRejected(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	err := board.Upsert(ctx, nil)
	require.Error(t, err)
	assert.True(t, momentoerrors.IsInvalidArgument(err))

	_, err = board.GetRank(ctx, nil, Ascending)
	require.Error(t, err)
	assert.True(t, momentoerrors.IsInvalidArgument(err))

	err = board.RemoveElements(ctx, nil)
	require.Error(t, err)
	assert.True(t, momentoerrors.IsInvalidArgument(err))
}

func TestLeaderboardValidatesNames(t *testing.T) {
	client := &Client{configuration: config.Laptop(), logger: zap.NewNop()}

	_, err := client.Leaderboard("", "board")
	require.Error(t, err)
	assert.True(t, momentoerrors.IsInvalidArgument(err))

	_, err = client.Leaderboard("cache", "")
	require.Error(t, err)
	assert.True(t, momentoerrors.IsInvalidArgument(err))
}
