package schedule

import "sync"

// BarberLocks serializa a sequência "ler agenda → checar conflito →
// gravar" por barbeiro. Pedidos para barbeiros diferentes seguem em
// paralelo; só pedidos para o mesmo barbeiro enfileiram.
type BarberLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewBarberLocks() *BarberLocks {
	return &BarberLocks{
		locks: make(map[uint]*sync.Mutex),
	}
}

// Lock adquire o lock do barbeiro e devolve a função de liberação.
func (b *BarberLocks) Lock(barberID uint) func() {
	b.mu.Lock()
	m, ok := b.locks[barberID]
	if !ok {
		m = &sync.Mutex{}
		b.locks[barberID] = m
	}
	b.mu.Unlock()

	m.Lock()
	return m.Unlock
}
