package srv

type Srv struct {
	rbac   *RBACSrv
	notify Notifier
}

type ApplyFunc func(*Srv)

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{
		rbac: SetupRBACSrv(),
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

func ApplyNotifier(n Notifier) ApplyFunc {
	return func(s *Srv) {
		s.notify = n
	}
}

func (s *Srv) RBAC() *RBACSrv {
	return s.rbac
}

func (s *Srv) Notifier() Notifier {
	return s.notify
}
