package repos_test

import (
	"strings"
	"testing"

	"llantera/internal/catalog"
	"llantera/internal/domain"
	"llantera/internal/repos"
)

func testDB(t *testing.T) *repos.ProductRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewProductRepo(db)
}

func TestListPushdownAgreesWithApply(t *testing.T) {
	prods := testDB(t)
	all, err := prods.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) == 0 {
		t.Fatal("seed catalog is empty")
	}

	filters := []repos.Filter{
		{},
		{VehicleType: "auto"},
		{VehicleType: "truck"},
		{VehicleType: "all"},
		{Size: "205/55R16"},
		{Brand: "Michelin"},
		{Brand: "all"},
		{VehicleType: "auto", Size: "205/55R16"},
		{VehicleType: "truck", Brand: "Michelin"},
		{VehicleType: "auto", Size: "205/55R16", Brand: "Westlake"},
		{Size: "no-such-size"},
	}
	for _, f := range filters {
		fromStore, err := prods.List(f)
		if err != nil {
			t.Fatalf("%+v: %v", f, err)
		}
		inMemory := catalog.Apply(all, catalog.Query{
			VehicleType: f.VehicleType,
			Size:        f.Size,
			Brand:       f.Brand,
		})
		if len(fromStore) != len(inMemory) {
			t.Fatalf("%+v: store returned %d, in-memory %d", f, len(fromStore), len(inMemory))
		}
		for i := range fromStore {
			if fromStore[i].ID != inMemory[i].ID {
				t.Fatalf("%+v: order differs at %d: %s vs %s", f, i, fromStore[i].ID, inMemory[i].ID)
			}
		}
	}
}

func TestCreateWritesInitialMovement(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	prods := repos.NewProductRepo(db)
	stock := repos.NewStockRepo(db)

	p := domain.Product{
		ID: "new-tire", Reference: "N-1", Name: "Sportrak SP726", Brand: "Sportrak",
		Size: "175/70R13", Price: 145000, VehicleType: domain.VehicleAuto, Stock: 7,
	}
	if err := prods.Create(p); err != nil {
		t.Fatal(err)
	}

	got, err := prods.Get("new-tire")
	if err != nil {
		t.Fatal(err)
	}
	if got.Stock != 7 || got.Price != 145000 {
		t.Errorf("got %+v", got)
	}

	moves, err := stock.ListByProduct("new-tire")
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 1 {
		t.Fatalf("expected one movement, got %d", len(moves))
	}
	if moves[0].Type != domain.MovementIn || moves[0].Quantity != 7 || moves[0].Reason != "Initial Creation" {
		t.Errorf("movement = %+v", moves[0])
	}
}

func TestUpdateMissingProduct(t *testing.T) {
	prods := testDB(t)
	err := prods.Update(domain.Product{ID: "ghost", Name: "x", Brand: "x", Size: "x", VehicleType: domain.VehicleAuto})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v", err)
	}
}

func TestDeleteCascadesMovements(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	prods := repos.NewProductRepo(db)
	stock := repos.NewStockRepo(db)

	if err := prods.Delete("west-rp28"); err != nil {
		t.Fatal(err)
	}
	if _, err := prods.Get("west-rp28"); err == nil {
		t.Fatal("product should be gone")
	}
	moves, err := stock.ListByProduct("west-rp28")
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 0 {
		t.Fatalf("movement log should be gone, got %d rows", len(moves))
	}
}

func TestDeleteRejectsOrderedProduct(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	prods := repos.NewProductRepo(db)
	orders := repos.NewOrderRepo(db)

	if _, err := orders.Place([]domain.LineItem{
		{ProductID: "kumho-es31", Quantity: 1, Price: 190000},
	}, 190000); err != nil {
		t.Fatal(err)
	}

	err = prods.Delete("kumho-es31")
	if err == nil {
		t.Fatal("delete of ordered product must fail")
	}
	if _, err := prods.Get("kumho-es31"); err != nil {
		t.Fatalf("failed delete must leave the product in place: %v", err)
	}
}
