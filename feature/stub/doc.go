// Package stub fakes the storage REST service for SDK development and tests.
//
// It serves every route the SDK calls with a scripted envelope and keeps a log
// of the requests it received. It stores nothing and evaluates no expressions.
//
// # Fixtures
//
// Each route starts with an empty success envelope ([] for list and search
// routes, zeroed counters for stats). SetFixture or a YAML file loaded with
// LoadFixtures replaces them, e.g. to script a duplicate-name rejection.
//
// # In-process Use
//
// NewDoer plugs the fiber app straight into transport.NewClientWithDoer, so
// tests exercise the real HTTP transport without listening on a port.
//
//	svc := stub.NewService(zap.NewNop())
//	app := stub.NewApp(server.Config{}, svc, zap.NewNop())
//	client, _ := transport.NewClientWithDoer(cfg, stub.NewDoer(app), nil)
package stub
