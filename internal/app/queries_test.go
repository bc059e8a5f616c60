package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chainstay/internal/app"
	"chainstay/internal/domain"
)

func seedSearchWorld(t *testing.T) *fakeStore {
	t.Helper()
	st := newFakeStore()
	ctx := context.Background()

	chains := []domain.HotelChain{{ChainName: "Northlight"}, {ChainName: "Harbor"}}
	for _, c := range chains {
		if err := st.CreateChain(ctx, c); err != nil {
			t.Fatal(err)
		}
	}
	hotels := []domain.Hotel{
		{Address: "12 Pine St, Ottawa, ON", ChainName: "Northlight", Rating: 4},
		{Address: "7 Bay Ave, Halifax, NS", ChainName: "Harbor", Rating: 3},
	}
	for _, h := range hotels {
		if err := st.CreateHotel(ctx, h); err != nil {
			t.Fatal(err)
		}
	}
	rooms := []domain.Room{
		{RoomNumber: 101, Price: 100, Capacity: 2, ViewType: "city", HotelAddress: "12 Pine St, Ottawa, ON"},
		{RoomNumber: 102, Price: 180, Capacity: 4, ViewType: "garden", HotelAddress: "12 Pine St, Ottawa, ON"},
		{RoomNumber: 201, Price: 150, Capacity: 2, ViewType: "sea", HotelAddress: "7 Bay Ave, Halifax, NS"},
	}
	for _, r := range rooms {
		if err := st.CreateRoom(ctx, r); err != nil {
			t.Fatal(err)
		}
	}
	if err := st.CreateCustomer(ctx, domain.Customer{CustomerID: "c-1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.CreateBooking(ctx, domain.Booking{StartDate: day(10), EndDate: day(14), RoomNumber: 101, CustomerID: "c-1"}); err != nil {
		t.Fatal(err)
	}
	return st
}

func roomNumbers(rs []domain.Room) []int64 {
	out := make([]int64, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.RoomNumber)
	}
	return out
}

func TestSearchRooms(t *testing.T) {
	svc := app.NewQueryService(seedSearchWorld(t), newFakeCache(), time.Minute)
	ctx := context.Background()

	intp := func(v int) *int { return &v }
	strp := func(v string) *string { return &v }
	f64p := func(v float64) *float64 { return &v }
	datep := func(d domain.Date) *domain.Date { return &d }

	t.Run("no criteria returns everything", func(t *testing.T) {
		got, err := svc.SearchRooms(ctx, domain.RoomSearch{})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Fatalf("got %v", roomNumbers(got))
		}
	})

	t.Run("capacity is a floor", func(t *testing.T) {
		got, err := svc.SearchRooms(ctx, domain.RoomSearch{Capacity: intp(3)})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RoomNumber != 102 {
			t.Fatalf("got %v", roomNumbers(got))
		}
	})

	t.Run("area matches address substring case-insensitively", func(t *testing.T) {
		got, err := svc.SearchRooms(ctx, domain.RoomSearch{Area: strp("ottawa")})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("got %v", roomNumbers(got))
		}
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		got, err := svc.SearchRooms(ctx, domain.RoomSearch{MinPrice: f64p(150), MaxPrice: f64p(150)})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RoomNumber != 201 {
			t.Fatalf("got %v", roomNumbers(got))
		}
	})

	t.Run("date pair excludes booked rooms", func(t *testing.T) {
		got, err := svc.SearchRooms(ctx, domain.RoomSearch{
			StartDate: datep(day(12)),
			EndDate:   datep(day(16)),
			Area:      strp("Ottawa"),
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RoomNumber != 102 {
			t.Fatalf("got %v", roomNumbers(got))
		}
	})

	t.Run("combined chain and rating", func(t *testing.T) {
		got, err := svc.SearchRooms(ctx, domain.RoomSearch{HotelChain: strp("Harbor"), HotelRating: intp(3)})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RoomNumber != 201 {
			t.Fatalf("got %v", roomNumbers(got))
		}
	})

	t.Run("lone end date rejected", func(t *testing.T) {
		if _, err := svc.SearchRooms(ctx, domain.RoomSearch{EndDate: datep(day(16))}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("got %v, want ErrValidation", err)
		}
	})

	t.Run("inverted dates rejected", func(t *testing.T) {
		if _, err := svc.SearchRooms(ctx, domain.RoomSearch{StartDate: datep(day(16)), EndDate: datep(day(12))}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("got %v, want ErrValidation", err)
		}
	})

	t.Run("inverted price bounds rejected", func(t *testing.T) {
		if _, err := svc.SearchRooms(ctx, domain.RoomSearch{MinPrice: f64p(200), MaxPrice: f64p(100)}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("got %v, want ErrValidation", err)
		}
	})
}

func TestViewsServeFromCacheAfterFirstRead(t *testing.T) {
	st := newFakeStore()
	st.areas = []domain.AreaAvailability{{Area: "Ottawa", AvailableRooms: 2}}
	st.capacities = []domain.HotelCapacity{{HotelAddress: "12 Pine St, Ottawa, ON", HotelChain: "Northlight", TotalRooms: 2, TotalCapacity: 6, AverageRoomCapacity: 3}}
	svc := app.NewQueryService(st, newFakeCache(), time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := svc.AvailableRoomsPerArea(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Area != "Ottawa" {
			t.Fatalf("read %d: got %+v", i, got)
		}
	}
	if st.reportHits != 1 {
		t.Fatalf("store hit %d times, want 1", st.reportHits)
	}

	got, err := svc.HotelRoomCapacity(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].AverageRoomCapacity != 3 {
		t.Fatalf("got %+v", got)
	}
	if _, err := svc.HotelRoomCapacity(ctx); err != nil {
		t.Fatal(err)
	}
	if st.reportHits != 2 {
		t.Fatalf("store hit %d times, want 2", st.reportHits)
	}
}
