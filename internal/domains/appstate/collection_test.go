package appstate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/occupancy"
	roomModel "frontdesk/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

var errWrite = errors.New("write failed")

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newRooms(now time.Time, rooms ...roomModel.Room) *appstate.Collection[roomModel.Room] {
	collection := appstate.NewCollection(roomModel.TableName, roomModel.Room.Key, occupancy.Resolve[roomModel.Room], fixedClock(now))
	collection.Replace(rooms)

	return collection
}

func okWrite(context.Context, roomModel.Room) error { return nil }

func failWrite(context.Context, roomModel.Room) error { return errWrite }

func TestCollection_AllResolvesWithoutWritingBack(t *testing.T) {
	now := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	guest := "Asha Rao"

	rooms := newRooms(now, roomModel.Room{Number: "101", Status: roomModel.StatusOccupied, Guest: &guest, CheckOut: &checkOut})

	all := rooms.All()
	assert.Len(t, all, 1)
	assert.Equal(t, roomModel.StatusAvailable, all[0].Status)
	assert.Nil(t, all[0].Guest)

	found, ok := rooms.Find("101")
	assert.True(t, ok)
	assert.Equal(t, roomModel.StatusAvailable, found.Status)

	_, ok = rooms.Find("999")
	assert.False(t, ok)
}

func TestCollection_Apply(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("commits after a successful write", func(t *testing.T) {
		rooms := newRooms(now, roomModel.Room{Number: "101", Status: roomModel.StatusAvailable})

		next, err := rooms.Apply(context.Background(), "101", func(current roomModel.Room) (roomModel.Room, error) {
			current.Status = roomModel.StatusCleaning

			return current, nil
		}, okWrite)

		assert.NoError(t, err)
		assert.Equal(t, roomModel.StatusCleaning, next.Status)

		stored, _ := rooms.Find("101")
		assert.Equal(t, roomModel.StatusCleaning, stored.Status)
	})

	t.Run("keeps the previous value when the write fails", func(t *testing.T) {
		rooms := newRooms(now, roomModel.Room{Number: "101", Status: roomModel.StatusAvailable})

		_, err := rooms.Apply(context.Background(), "101", func(current roomModel.Room) (roomModel.Room, error) {
			current.Status = roomModel.StatusMaintenance

			return current, nil
		}, failWrite)

		assert.ErrorIs(t, err, errWrite)

		stored, _ := rooms.Find("101")
		assert.Equal(t, roomModel.StatusAvailable, stored.Status)
	})

	t.Run("mutation errors skip the write", func(t *testing.T) {
		rooms := newRooms(now, roomModel.Room{Number: "101"})
		errRejected := errors.New("rejected")
		written := false

		_, err := rooms.Apply(context.Background(), "101", func(roomModel.Room) (roomModel.Room, error) {
			return roomModel.Room{}, errRejected
		}, func(context.Context, roomModel.Room) error {
			written = true

			return nil
		})

		assert.ErrorIs(t, err, errRejected)
		assert.False(t, written)
	})

	t.Run("unknown key", func(t *testing.T) {
		rooms := newRooms(now)

		_, err := rooms.Apply(context.Background(), "404", func(r roomModel.Room) (roomModel.Room, error) { return r, nil }, okWrite)

		assert.ErrorIs(t, err, appstate.ErrNotFound)
	})
}

func TestCollection_InsertAndRemove(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	rooms := newRooms(now, roomModel.Room{Number: "101"})

	assert.ErrorIs(t, rooms.Insert(context.Background(), roomModel.Room{Number: "101"}, okWrite), appstate.ErrDuplicate)
	assert.ErrorIs(t, rooms.Insert(context.Background(), roomModel.Room{Number: "102"}, failWrite), errWrite)
	assert.Equal(t, 1, rooms.Len())

	assert.NoError(t, rooms.Insert(context.Background(), roomModel.Room{Number: "102"}, okWrite))
	assert.Equal(t, 2, rooms.Len())

	assert.ErrorIs(t, rooms.Remove(context.Background(), "101", failWrite), errWrite)
	assert.Equal(t, 2, rooms.Len())

	assert.NoError(t, rooms.Remove(context.Background(), "101", okWrite))
	assert.ErrorIs(t, rooms.Remove(context.Background(), "101", okWrite), appstate.ErrNotFound)

	all := rooms.All()
	assert.Len(t, all, 1)
	assert.Equal(t, "102", all[0].Number)
}

func TestCollection_SnapshotIsACopy(t *testing.T) {
	rooms := newRooms(time.Now(), roomModel.Room{Number: "101", Type: "Standard"})

	snapshot := rooms.All()
	snapshot[0].Type = "Suite"

	stored, _ := rooms.Find("101")
	assert.Equal(t, "Standard", stored.Type)
}
