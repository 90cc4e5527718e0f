package xlog

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"
)

func TestFxXLogger_NilReceiver(t *testing.T) {
	var logger *FxXLogger = nil
	logger.LogEvent(&fxevent.Started{})
}

func TestFxXLoggerAllCases(t *testing.T) {
	testcases := []struct {
		name  string
		event fxevent.Event
	}{
		{
			"onStartExecuting",
			&fxevent.OnStartExecuting{
				FunctionName: "testFunc1",
				CallerName:   "testCaller1",
			},
		},
		{
			"onStartExecuted_err",
			&fxevent.OnStartExecuted{
				FunctionName: "testFunc2",
				CallerName:   "testCaller2",
				Runtime:      10,
				Err:          errors.New("fx error 1"),
			},
		},
		{
			"onStartExecuted_succ",
			&fxevent.OnStartExecuted{
				FunctionName: "testFunc3",
				CallerName:   "testCaller3",
				Runtime:      10,
			},
		},
		{
			"onStopExecuting",
			&fxevent.OnStopExecuting{
				FunctionName: "testFunc4",
				CallerName:   "testCaller4",
			},
		},
		{
			"onStopExecuted_err",
			&fxevent.OnStopExecuted{
				FunctionName: "testFunc5",
				CallerName:   "testCaller5",
				Runtime:      11,
				Err:          errors.New("fx error 2"),
			},
		},
		{
			"onStopExecuted_succ",
			&fxevent.OnStopExecuted{
				FunctionName: "testFunc6",
				CallerName:   "testCaller6",
				Runtime:      12,
			},
		},
		{
			"supplied_err",
			&fxevent.Supplied{
				TypeName:   "testType1",
				Err:        errors.New("fx error 3"),
				StackTrace: []string{"testStack1"},
			},
		},
		{
			"supplied_from_module",
			&fxevent.Supplied{
				TypeName:   "testType2",
				ModuleName: "testModule1",
			},
		},
		{
			"supplied_type_only",
			&fxevent.Supplied{
				TypeName: "testType3",
			},
		},
		{
			"provided",
			&fxevent.Provided{
				ConstructorName: "testCtor1",
				ModuleName:      "testModule2",
				OutputTypeNames: []string{"testType4", "testType5"},
			},
		},
		{
			"provided_err",
			&fxevent.Provided{
				ConstructorName: "testCtor2",
				OutputTypeNames: []string{"testType6"},
				Err:             errors.New("fx error 4"),
				StackTrace:      []string{"testStack2"},
			},
		},
		{
			"replaced",
			&fxevent.Replaced{
				ModuleName:      "testModule3",
				OutputTypeNames: []string{"testType7"},
			},
		},
		{
			"decorated",
			&fxevent.Decorated{
				DecoratorName:   "testDecorator1",
				OutputTypeNames: []string{"testType8"},
			},
		},
		{
			"invoking",
			&fxevent.Invoking{
				FunctionName: "testFunc7",
				ModuleName:   "testModule4",
			},
		},
		{
			"invoked_err",
			&fxevent.Invoked{
				FunctionName: "testFunc8",
				Err:          errors.New("fx error 5"),
				Trace:        "testTrace1",
			},
		},
		{
			"stopping",
			&fxevent.Stopping{
				Signal: os.Interrupt,
			},
		},
		{
			"stopped_err",
			&fxevent.Stopped{
				Err: errors.New("fx error 6"),
			},
		},
		{
			"rollingBack",
			&fxevent.RollingBack{
				StartErr: errors.New("fx error 7"),
			},
		},
		{
			"rolledBack_err",
			&fxevent.RolledBack{
				Err: errors.New("fx error 8"),
			},
		},
		{
			"started_succ",
			&fxevent.Started{},
		},
		{
			"loggerInitialized_succ",
			&fxevent.LoggerInitialized{
				ConstructorName: "testCtor3",
			},
		},
	}

	parent := newTestLogger()
	logger := NewFxXLogger(parent)
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			logger.LogEvent(tc.event)
		})
	}
	require.NoError(t, parent.Sync())

	out := testMemSyncer.String()
	require.Contains(t, out, "testFunc1")
	require.Contains(t, out, "fx error 1")
	require.Contains(t, out, "RUNNING")
}
