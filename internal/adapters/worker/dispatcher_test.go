package worker_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/csspipe/internal/adapters/inprocess"
	"go.trai.ch/csspipe/internal/adapters/processor"
	"go.trai.ch/csspipe/internal/adapters/shell"
	"go.trai.ch/csspipe/internal/adapters/worker"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// TestHelperProcess stands in for the csspipe binary's worker subcommand.
func TestHelperProcess(_ *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("HELPER_MODE") {
	case "garbage":
		_, _ = fmt.Fprint(os.Stdout, "this is not json")
		os.Exit(0)
	case "wrong-id":
		var req domain.WorkerRequest
		_ = json.NewDecoder(os.Stdin).Decode(&req)
		_ = json.NewEncoder(os.Stdout).Encode(domain.WorkerResponse{ID: "someone-else", CSS: req.CSS})
		os.Exit(0)
	case "sleep":
		_, _ = io.Copy(io.Discard, os.Stdin)
		time.Sleep(10 * time.Second)
		os.Exit(0)
	}

	factory := processor.NewFactory(shell.NewExecutor())
	os.Exit(worker.Serve(context.Background(), os.Stdin, os.Stdout, os.Stderr, factory))
}

func newHelperDispatcher(t *testing.T, mode string, ctrl *gomock.Controller) (*worker.Dispatcher, *mocks.MockFrameworkDetector, *mocks.MockLogger) {
	t.Helper()

	detector := mocks.NewMockFrameworkDetector(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	d, err := worker.NewDispatcher(shell.NewExecutor(), detector, logger,
		worker.WithCommand(os.Args[0], "-test.run=^TestHelperProcess$", "--"),
		worker.WithEnv(map[string]string{
			"GO_WANT_HELPER_PROCESS": "1",
			"HELPER_MODE":            mode,
		}),
	)
	require.NoError(t, err)
	return d, detector, logger
}

var compactSettings = map[string]any{
	"plugins": []any{map[string]any{"compact": map[string]any{}}},
}

func TestDispatcher_Dispatch_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _, _ := newHelperDispatcher(t, "", ctrl)

	res, err := d.Dispatch(context.Background(), "a  {  color : red ; }", domain.Options{Settings: compactSettings})
	require.NoError(t, err)
	assert.Equal(t, "a{color :red;}", res.CSS)
	assert.Empty(t, res.Warning)
}

func TestDispatcher_Dispatch_Warning(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _, _ := newHelperDispatcher(t, "", ctrl)

	res, err := d.Dispatch(context.Background(), "a { content: \"open\n}", domain.Options{Settings: compactSettings})
	require.NoError(t, err)
	assert.Equal(t, "compact: malformed string on line 1", res.Warning)
}

func TestDispatcher_Dispatch_TransformFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _, _ := newHelperDispatcher(t, "", ctrl)

	settings := map[string]any{"plugins": []any{map[string]any{"autoprefixer": nil}}}

	_, err := d.Dispatch(context.Background(), "a{}", domain.Options{Settings: settings})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrTransformFailed)
	assert.Contains(t, err.Error(), "autoprefixer")
}

func TestDispatcher_Dispatch_InvalidPluginUnderNext(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, detector, logger := newHelperDispatcher(t, "", ctrl)

	detector.EXPECT().HasPackage("next").Return(true)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), "Next.js")
	})

	settings := map[string]any{"plugins": []any{"compact"}}

	_, err := d.Dispatch(context.Background(), "a{}", domain.Options{Settings: settings})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrEnvironmentIncompatible)
	assert.Contains(t, err.Error(), domain.InvalidPluginMarker)
}

func TestDispatcher_Dispatch_InvalidPluginWithoutNext(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, detector, _ := newHelperDispatcher(t, "", ctrl)

	detector.EXPECT().HasPackage("next").Return(false)

	settings := map[string]any{"plugins": []any{[]any{"compact", map[string]any{}}}}

	_, err := d.Dispatch(context.Background(), "a{}", domain.Options{Settings: settings})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrTransformFailed)
	assert.NotErrorIs(t, err, domain.ErrEnvironmentIncompatible)
	assert.Contains(t, err.Error(), domain.InvalidPluginMarker)
}

func TestDispatcher_Dispatch_MalformedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _, _ := newHelperDispatcher(t, "garbage", ctrl)

	_, err := d.Dispatch(context.Background(), "a{}", domain.Options{})
	require.ErrorIs(t, err, domain.ErrWorkerProtocol)
}

func TestDispatcher_Dispatch_MismatchedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _, _ := newHelperDispatcher(t, "wrong-id", ctrl)

	_, err := d.Dispatch(context.Background(), "a{}", domain.Options{})
	require.ErrorIs(t, err, domain.ErrWorkerProtocol)
}

func TestDispatcher_Dispatch_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _, _ := newHelperDispatcher(t, "sleep", ctrl)

	start := time.Now()
	_, err := d.Dispatch(context.Background(), "a{}", domain.Options{Timeout: 200 * time.Millisecond})
	require.ErrorIs(t, err, domain.ErrWorkerTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDispatcher_Dispatch_SpawnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	d, err := worker.NewDispatcher(shell.NewExecutor(), mocks.NewMockFrameworkDetector(ctrl), mocks.NewMockLogger(ctrl),
		worker.WithCommand("/nonexistent/csspipe", "worker"),
	)
	require.NoError(t, err)

	_, err = d.Dispatch(context.Background(), "a{}", domain.Options{})
	require.ErrorIs(t, err, domain.ErrWorkerSpawnFailed)
}

func TestDispatcher_Dispatch_Request(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	d, err := worker.NewDispatcher(executor, mocks.NewMockFrameworkDetector(ctrl), mocks.NewMockLogger(ctrl),
		worker.WithCommand("csspipe", "worker"),
	)
	require.NoError(t, err)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
			assert.Equal(t, []string{"csspipe", "worker"}, cmd.Args)

			var req domain.WorkerRequest
			require.NoError(t, json.Unmarshal(cmd.Stdin, &req))
			assert.NotEmpty(t, req.ID)
			assert.Equal(t, "a{}", req.CSS)
			assert.Equal(t, map[string]any{"mode": "strict"}, req.Settings)

			out, err := json.Marshal(domain.WorkerResponse{ID: req.ID, CSS: "b{}", Warning: "careful"})
			require.NoError(t, err)
			return domain.CommandResult{Stdout: out}, nil
		})

	res, err := d.Dispatch(context.Background(), "a{}", domain.Options{Settings: map[string]any{"mode": "strict"}})
	require.NoError(t, err)
	assert.Equal(t, domain.Result{CSS: "b{}", Warning: "careful"}, res)
}

func TestDispatch_StrategyEquivalence(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub, _, _ := newHelperDispatcher(t, "", ctrl)
	inproc := inprocess.NewDispatcher(processor.NewFactory(shell.NewExecutor()))

	inputs := []string{
		"",
		"a { color: red; }",
		"div {\n  width: /*%%styled-jsx-placeholder-0%%*/px;\n}\n",
		"@media (min-width: 640px) { .a , .b { display : none } }",
		"p { content: \"unterminated\n}",
	}
	settings := []map[string]any{
		nil,
		compactSettings,
		{"plugins": []any{
			map[string]any{"command": map[string]any{"argv": []any{"tr", "a-z", "A-Z"}}},
			map[string]any{"compact": nil},
		}},
	}

	for _, s := range settings {
		for _, css := range inputs {
			want, wantErr := inproc.Dispatch(context.Background(), css, domain.Options{InProcess: true, Settings: s})
			got, gotErr := sub.Dispatch(context.Background(), css, domain.Options{Settings: s})

			require.NoError(t, wantErr)
			require.NoError(t, gotErr)
			assert.Equal(t, want, got, "settings=%v css=%q", s, css)
		}
	}
}

func TestDispatch_StrategyEquivalence_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub, detector, _ := newHelperDispatcher(t, "", ctrl)
	detector.EXPECT().HasPackage(worker.FrameworkPackage).Return(false).AnyTimes()
	inproc := inprocess.NewDispatcher(processor.NewFactory(shell.NewExecutor()))

	settings := []map[string]any{
		{"plugins": []any{"compact"}},
		{"plugins": []any{map[string]any{"nope": nil}}},
		{"plugins": "compact"},
	}

	for _, s := range settings {
		_, inErr := inproc.Dispatch(context.Background(), "a{}", domain.Options{InProcess: true, Settings: s})
		_, subErr := sub.Dispatch(context.Background(), "a{}", domain.Options{Settings: s})

		require.ErrorIs(t, inErr, domain.ErrTransformFailed, "settings=%v", s)
		require.ErrorIs(t, subErr, domain.ErrTransformFailed, "settings=%v", s)
	}
}
