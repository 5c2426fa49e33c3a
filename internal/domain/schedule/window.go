package schedule

import (
	"sort"
	"time"
)

// ===============================
// Janela de horário
// ===============================

// Window é o intervalo semiaberto [Start, End) que um agendamento
// ocupa na agenda de um barbeiro.
type Window struct {
	Start time.Time `json:"starts_at"`
	End   time.Time `json:"ends_at"`
}

// Overlaps testa se duas janelas semiabertas se cruzam.
// Janelas encostadas (a.End == b.Start) NÃO conflitam, o que permite
// agendamentos em sequência imediata.
func Overlaps(a, b Window) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// ===============================
// Índice ordenado por barbeiro
// ===============================

// Timeline mantém as janelas ativas de um barbeiro ordenadas por
// início. As janelas devem ser duas a duas disjuntas (invariante
// garantida pelo fluxo de criação).
type Timeline struct {
	windows []Window
}

func NewTimeline(windows []Window) Timeline {
	ws := make([]Window, len(windows))
	copy(ws, windows)
	sort.Slice(ws, func(i, j int) bool {
		return ws[i].Start.Before(ws[j].Start)
	})
	return Timeline{windows: ws}
}

func (t Timeline) Len() int {
	return len(t.windows)
}

func (t Timeline) Windows() []Window {
	return t.windows
}

// Conflicts responde se a janela candidata cruza alguma janela ativa.
// Como as janelas são disjuntas e ordenadas, basta inspecionar a
// última janela que começa antes do fim da candidata.
func (t Timeline) Conflicts(w Window) bool {
	i := sort.Search(len(t.windows), func(i int) bool {
		return !t.windows[i].Start.Before(w.End)
	})
	if i == 0 {
		return false
	}
	return t.windows[i-1].End.After(w.Start)
}
