package mock

//go:generate mockgen -package mock -destination clock.go -mock_names Clock=MockClock,Ticker=MockTicker github.com/buildbarn/bb-montecarlo/pkg/clock Clock,Ticker
//go:generate mockgen -package mock -destination montecarlo.go github.com/buildbarn/bb-montecarlo/pkg/montecarlo Accumulator,ConvergenceOracle
//go:generate mockgen -package mock -destination random.go github.com/buildbarn/bb-montecarlo/pkg/random SingleThreadedGenerator
//go:generate mockgen -package mock -destination util.go github.com/buildbarn/bb-montecarlo/pkg/util ErrorLogger
