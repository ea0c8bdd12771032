//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"

	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/measure/psd"
)

var (
	runner *psd.Runner
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		seed := uint64(1)
		if len(args) > 0 {
			seed = uint64(args[0].Int())
		}
		runner = psd.NewRunner(signal.NewNoiseSource(seed))
		return js.Null()
	}))

	api.Set("compute", export(func(args []js.Value) any {
		if runner == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		params := signal.Params{
			F0:         p.Get("f0").Float(),
			F1:         p.Get("f1").Float(),
			A0:         p.Get("a0").Float(),
			A1:         p.Get("a1").Float(),
			NoiseAmp:   p.Get("noise").Float(),
			SampleRate: p.Get("rate").Float(),
			Duration:   p.Get("duration").Float(),
		}

		res, err := runner.Submit(params)
		if errors.Is(err, psd.ErrSuperseded) {
			// A newer parameter set is already being computed; the caller
			// should wait for that result instead.
			return js.Null()
		}
		if err != nil {
			obj := js.Global().Get("Object").New()
			obj.Set("error", err.Error())
			return obj
		}

		obj := js.Global().Get("Object").New()
		obj.Set("time", toFloat64Array(res.Time))
		obj.Set("deterministic", toFloat64Array(res.Deterministic))
		obj.Set("noisy", toFloat64Array(res.Noisy))
		obj.Set("lags", toFloat64Array(res.Lags))
		obj.Set("autocorr", toFloat64Array(res.AutoCorr))
		obj.Set("frequencies", toFloat64Array(res.NoisySpectrum.Frequencies))
		obj.Set("deterministicSpectrum", toFloat64Array(res.DeterministicSpectrum.Magnitudes()))
		obj.Set("noisySpectrum", toFloat64Array(res.NoisySpectrum.Magnitudes()))
		obj.Set("autocorrSpectrum", toFloat64Array(res.AutoCorrSpectrum.Magnitudes()))
		return obj
	}))

	js.Global().Set("SpectraDemo", api)
	select {}
}

func toFloat64Array(values []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(values))
	for i, v := range values {
		arr.SetIndex(i, v)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
