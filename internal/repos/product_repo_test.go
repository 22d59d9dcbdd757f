package repos_test

import (
	"bytes"
	"testing"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/repos"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

func domainPatchQty(n int) domain.ProductPatch { return domain.ProductPatch{Qty: &n} }

func memstore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestProductRepo_IDAssignment(t *testing.T) {
	r := repos.NewProductRepo(memstore(t))

	// empty collection starts at 1, then strictly increasing
	for want := 1; want <= 4; want++ {
		p, err := r.Add("Pan Blanco", "Pan", 10, 5, 1.5)
		if err != nil {
			t.Fatal(err)
		}
		if p.ID != want {
			t.Fatalf("want id %d, got %d", want, p.ID)
		}
	}

	// deleting below the maximum does not free that id
	if _, ok := r.Delete(2); !ok {
		t.Fatal("delete id 2 failed")
	}
	p, err := r.Add("Croissant", "Bollería", 5, 2, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 5 {
		t.Fatalf("want id 5 after deleting a lower id, got %d", p.ID)
	}

	// emptying the collection resets numbering to 1
	for _, id := range []int{1, 3, 4, 5} {
		if _, ok := r.Delete(id); !ok {
			t.Fatalf("delete id %d failed", id)
		}
	}
	p, err = r.Add("Harina", "Ingredientes", 25, 50, 1.2)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 1 {
		t.Fatalf("want id 1 on emptied collection, got %d", p.ID)
	}
}

func TestProductRepo_EditMergesPresentFieldsOnly(t *testing.T) {
	r := repos.NewProductRepo(memstore(t))
	added, err := r.Add("Pan Integral", "Pan", 80, 40, 2.0)
	if err != nil {
		t.Fatal(err)
	}

	qty := 81
	p, ok := r.Edit(added.ID, domainPatchQty(qty))
	if !ok {
		t.Fatal("edit miss on existing id")
	}
	if p.Qty != 81 || p.Name != "Pan Integral" || p.Price != 2.0 {
		t.Fatalf("partial update clobbered fields: %+v", p)
	}
	if !p.Updated.After(added.Updated) && !p.Updated.Equal(added.Updated) {
		t.Fatalf("updated not refreshed: %v -> %v", added.Updated, p.Updated)
	}
}

func TestProductRepo_MissesAreNoOps(t *testing.T) {
	st := memstore(t)
	r := repos.NewProductRepo(st)
	if _, err := r.Add("Galletas de Mantequilla", "Galletas", 200, 100, 0.75); err != nil {
		t.Fatal(err)
	}
	before, err := st.Get(store.KeyProducts)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := r.Edit(999, domainPatchQty(1)); ok {
		t.Fatal("edit on absent id reported success")
	}
	if _, ok := r.Delete(999); ok {
		t.Fatal("delete on absent id reported success")
	}

	after, err := st.Get(store.KeyProducts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Fatalf("collection changed on missed edit/delete:\n%s\n%s", before, after)
	}
}

func TestProductRepo_MalformedCollectionReadsEmpty(t *testing.T) {
	st := memstore(t)
	if err := st.Set(store.KeyProducts, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	r := repos.NewProductRepo(st)
	if got := r.List(); len(got) != 0 {
		t.Fatalf("malformed data should read empty, got %d items", len(got))
	}
	// and the next add starts numbering from scratch
	p, err := r.Add("Pan Blanco", "Pan", 1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 1 {
		t.Fatalf("want id 1, got %d", p.ID)
	}
}
