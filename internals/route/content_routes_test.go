package routes

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitsa_backend/internals/constants"
	eventModel "bitsa_backend/internals/features/content/events/model"
	galleryModel "bitsa_backend/internals/features/content/gallery/model"
)

func blogBody(title, category string) fiber.Map {
	return fiber.Map{
		"title":    title,
		"content":  "<p>Notes from the " + title + " session.</p>",
		"category": category,
	}
}

func eventBody(title string, date time.Time) fiber.Map {
	return fiber.Map{
		"title":       title,
		"description": "Hands-on session about " + title,
		"date":        date.Format("2006-01-02"),
		"time":        "14:00",
		"location":    "Lab 3",
		"category":    "Workshop",
	}
}

func (ta *testApp) createBlog(token string, body fiber.Map) map[string]any {
	ta.t.Helper()
	code, res := ta.do(fiber.MethodPost, "/api/blogs", token, body)
	require.Equal(ta.t, fiber.StatusCreated, code, res)
	return dataMap(ta.t, res)
}

func (ta *testApp) createEvent(token string, body fiber.Map) map[string]any {
	ta.t.Helper()
	code, res := ta.do(fiber.MethodPost, "/api/events", token, body)
	require.Equal(ta.t, fiber.StatusCreated, code, res)
	return dataMap(ta.t, res)
}

func TestBlogs_ModerationScenario(t *testing.T) {
	ta := newTestApp(t)
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)
	_, admin := ta.admin()

	code, body := ta.do(fiber.MethodPost, "/api/blogs", alice, blogBody("Intro to Go", "Programming"))
	require.Equal(t, fiber.StatusCreated, code, body)
	assert.Equal(t, "Blog submitted for approval", body["message"])
	blog := dataMap(t, body)
	assert.Equal(t, "PENDING", blog["status"])
	assert.Equal(t, false, blog["isAdminPost"])
	assert.Equal(t, "Notes from the Intro to Go session.", blog["excerpt"])
	id := blog["id"].(string)

	// pending posts are hidden from the public listing but reachable by id
	_, list := ta.do(fiber.MethodGet, "/api/blogs", "", nil)
	assert.Empty(t, dataList(t, list))
	code, _ = ta.do(fiber.MethodGet, "/api/blogs/"+id, "", nil)
	assert.Equal(t, fiber.StatusOK, code)

	// the author cannot approve their own post
	code, _ = ta.do(fiber.MethodPost, "/api/blogs/"+id+"/approve", alice, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	// the author may still edit while pending
	code, body = ta.do(fiber.MethodPut, "/api/blogs/"+id, alice, fiber.Map{"title": "Intro to Go, revised", "category": ""})
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, "Intro to Go, revised", dataMap(t, body)["title"])
	assert.Equal(t, "Programming", dataMap(t, body)["category"])
	assert.Equal(t, "PENDING", dataMap(t, body)["status"])

	code, body = ta.do(fiber.MethodPost, "/api/blogs/"+id+"/approve", admin, nil)
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, "APPROVED", dataMap(t, body)["status"])

	_, list = ta.do(fiber.MethodGet, "/api/blogs", "", nil)
	assert.Equal(t, []string{id}, ids(dataList(t, list)))
	assert.Equal(t, []any{"All", "Programming"}, list["categories"])

	// approval freezes the post for its author
	code, body = ta.do(fiber.MethodPut, "/api/blogs/"+id, alice, fiber.Map{"title": "sneaky"})
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Cannot edit approved blog posts", body["message"])
	code, body = ta.do(fiber.MethodDelete, "/api/blogs/"+id, alice, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Cannot delete approved blog posts", body["message"])

	code, _ = ta.do(fiber.MethodPut, "/api/blogs/"+id, admin, fiber.Map{"title": "Edited by admin"})
	assert.Equal(t, fiber.StatusOK, code)

	code, body = ta.do(fiber.MethodDelete, "/api/blogs/"+id, admin, nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Blog deleted successfully", body["message"])

	code, _ = ta.do(fiber.MethodGet, "/api/blogs/"+id, "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestBlogs_AdminPostIsPublishedImmediately(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()

	code, body := ta.do(fiber.MethodPost, "/api/blogs", admin, blogBody("Club news", "News"))
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "Blog published successfully", body["message"])
	assert.Equal(t, "APPROVED", dataMap(t, body)["status"])
	assert.Equal(t, true, dataMap(t, body)["isAdminPost"])
}

func TestBlogs_OwnershipAndNotFound(t *testing.T) {
	ta := newTestApp(t)
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)
	_, bob := ta.user("Bob Otieno", constants.RoleStudent)

	id := ta.createBlog(alice, blogBody("Draft", "Misc"))["id"].(string)

	code, body := ta.do(fiber.MethodDelete, "/api/blogs/"+id, bob, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "You can only delete your own blog posts", body["message"])

	// a missing id is 404 for everyone, never 403
	missing := uuid.NewString()
	code, _ = ta.do(fiber.MethodDelete, "/api/blogs/"+missing, bob, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	code, _ = ta.do(fiber.MethodGet, "/api/blogs/not-a-uuid", "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = ta.do(fiber.MethodPost, "/api/blogs", "", blogBody("anon", "Misc"))
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, body = ta.do(fiber.MethodPost, "/api/blogs", alice, fiber.Map{"title": "", "content": "", "category": ""})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["errors"], "title")
}

func TestBlogs_PublicFiltersNeverLeakUnapproved(t *testing.T) {
	ta := newTestApp(t)
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)
	_, admin := ta.admin()

	approved := ta.createBlog(admin, blogBody("Golang meetup", "Events"))["id"].(string)
	pending := ta.createBlog(alice, blogBody("Golang tips", "Events"))["id"].(string)
	rejected := ta.createBlog(alice, blogBody("Golang rant", "Events"))["id"].(string)
	code, _ := ta.do(fiber.MethodPost, "/api/blogs/"+rejected+"/reject", admin, nil)
	require.Equal(t, fiber.StatusOK, code)

	for _, q := range []string{"", "?search=golang", "?category=Events", "?category=All&search=GOLANG"} {
		_, body := ta.do(fiber.MethodGet, "/api/blogs"+q, "", nil)
		assert.Equal(t, []string{approved}, ids(dataList(t, body)), q)
	}

	_, body := ta.do(fiber.MethodGet, "/api/blogs/my-blogs", alice, nil)
	assert.ElementsMatch(t, []string{pending, rejected}, ids(dataList(t, body)))

	// rejected content stays rejected after an edit
	code, body = ta.do(fiber.MethodPut, "/api/blogs/"+rejected, alice, fiber.Map{"content": "<p>calmer now</p>"})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "REJECTED", dataMap(t, body)["status"])
}

func TestBlogs_PagingBeyondTheEnd(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	ta.createBlog(admin, blogBody("Only post", "News"))

	for _, page := range []string{"2", "9223372036854775807"} {
		code, body := ta.do(fiber.MethodGet, "/api/blogs?limit=10&page="+page, "", nil)
		require.Equal(t, fiber.StatusOK, code, body)
		assert.Empty(t, dataList(t, body), page)
		assert.EqualValues(t, 1, body["pagination"].(map[string]any)["total"])
	}
}

func TestPublicListings_StoreFailureIsGeneric500(t *testing.T) {
	ta := newTestApp(t)
	sqlDB, err := ta.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	for _, path := range []string{"/api/blogs", "/api/events", "/api/gallery"} {
		code, body := ta.do(fiber.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusInternalServerError, code, path)
		assert.Equal(t, "Unexpected", body["error"], path)
		assert.Equal(t, "An unexpected error occurred", body["message"], path)
	}
}

func TestBlogs_PendingQueueOldestFirst(t *testing.T) {
	ta := newTestApp(t)
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)
	_, admin := ta.admin()

	base := time.Now().UTC().Add(-time.Hour)
	var want []string
	for i, title := range []string{"first", "second", "third"} {
		id := ta.createBlog(alice, blogBody(title, "Misc"))["id"].(string)
		require.NoError(t, ta.db.Table("blog_posts").Where("id = ?", id).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
		want = append(want, id)
	}

	code, _ := ta.do(fiber.MethodGet, "/api/blogs/admin/pending", alice, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, body := ta.do(fiber.MethodGet, "/api/blogs/admin/pending", admin, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, want, ids(dataList(t, body)))
	assert.EqualValues(t, 3, body["pagination"].(map[string]any)["total"])
}

func TestEvents_RegistrationScenario(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	bobUser, bob := ta.user("Bob Otieno", constants.RoleStudent)

	ev := ta.createEvent(admin, eventBody("Hackathon", time.Now().UTC().AddDate(0, 0, 7)))
	assert.Equal(t, "APPROVED", ev["status"])
	assert.Equal(t, true, ev["isAdminPost"])
	assert.EqualValues(t, 0, ev["attendeeCount"])
	id := ev["id"].(string)

	code, body := ta.do(fiber.MethodPost, "/api/events/"+id+"/register", bob, nil)
	require.Equal(t, fiber.StatusCreated, code, body)
	assert.EqualValues(t, 1, dataMap(t, body)["attendeeCount"])

	code, body = ta.do(fiber.MethodPost, "/api/events/"+id+"/register", bob, nil)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "Already registered for this event", body["message"])

	_, body = ta.do(fiber.MethodGet, "/api/events/"+id, "", nil)
	assert.EqualValues(t, 1, dataMap(t, body)["attendeeCount"])

	code, body = ta.do(fiber.MethodGet, "/api/events/user/registrations", bob, nil)
	require.Equal(t, fiber.StatusOK, code)
	regs := dataMap(t, body)["registrations"].([]any)
	require.Len(t, regs, 1)
	assert.Equal(t, id, regs[0].(map[string]any)["event"].(map[string]any)["id"])

	code, _ = ta.do(fiber.MethodGet, "/api/events/"+id+"/attendees", bob, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
	code, body = ta.do(fiber.MethodGet, "/api/events/"+id+"/attendees", admin, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.EqualValues(t, 1, dataMap(t, body)["totalAttendees"])
	attendee := dataMap(t, body)["attendees"].([]any)[0].(map[string]any)
	assert.Equal(t, bobUser.Email, attendee["email"])

	code, _ = ta.do(fiber.MethodPost, "/api/events/"+uuid.NewString()+"/register", bob, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestEvents_ConcurrentRegistrationYieldsOneRow(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	_, carol := ta.user("Carol Njeri", constants.RoleStudent)
	id := ta.createEvent(admin, eventBody("Career fair", time.Now().UTC().AddDate(0, 1, 0)))["id"].(string)

	const attempts = 8
	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := newRequest(t, fiber.MethodPost, "/api/events/"+id+"/register", carol, nil)
			resp, err := ta.app.Test(req, -1)
			if err != nil {
				codes[i] = http.StatusInternalServerError
				return
			}
			resp.Body.Close()
			codes[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	created, conflicts := 0, 0
	for _, c := range codes {
		switch c {
		case fiber.StatusCreated:
			created++
		case fiber.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created, codes)
	assert.Equal(t, attempts-1, conflicts, codes)

	var rows int64
	require.NoError(t, ta.db.Model(&eventModel.EventRegistrationModel{}).Where("event_id = ?", id).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestEvents_ListingFilters(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)

	now := time.Now().UTC()
	soon := ta.createEvent(admin, eventBody("Soon", now.AddDate(0, 0, 2)))["id"].(string)
	later := ta.createEvent(admin, eventBody("Later", now.AddDate(0, 0, 20)))["id"].(string)
	past := ta.createEvent(admin, eventBody("Past", now.AddDate(0, 0, -10)))["id"].(string)
	pendingEv := ta.createEvent(alice, eventBody("Student pending", now.AddDate(0, 0, 3)))
	assert.Equal(t, "PENDING", pendingEv["status"])

	_, body := ta.do(fiber.MethodGet, "/api/events?filter=upcoming", "", nil)
	assert.Equal(t, []string{soon, later}, ids(dataList(t, body)))

	_, body = ta.do(fiber.MethodGet, "/api/events?filter=past", "", nil)
	assert.Equal(t, []string{past}, ids(dataList(t, body)))

	_, body = ta.do(fiber.MethodGet, "/api/events", "", nil)
	assert.Equal(t, []string{later, soon, past}, ids(dataList(t, body)))
	assert.Equal(t, []any{"All", "Workshop"}, body["categories"])

	_, body = ta.do(fiber.MethodGet, "/api/events?search=pending", "", nil)
	assert.Empty(t, dataList(t, body))

	_, body = ta.do(fiber.MethodGet, "/api/events/my-events", alice, nil)
	assert.Equal(t, []string{pendingEv["id"].(string)}, ids(dataList(t, body)))
}

func TestEvents_ModerationScenario(t *testing.T) {
	ta := newTestApp(t)
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)
	_, bob := ta.user("Bob Otieno", constants.RoleStudent)
	_, admin := ta.admin()

	body := eventBody("Go meetup", time.Now().UTC().AddDate(0, 0, 10))
	body["endTime"] = "16:00"
	body["imageUrl"] = "https://img.example.com/meetup.png"
	code, res := ta.do(fiber.MethodPost, "/api/events", alice, body)
	require.Equal(t, fiber.StatusCreated, code, res)
	assert.Equal(t, "Event submitted for approval", res["message"])
	ev := dataMap(t, res)
	assert.Equal(t, "PENDING", ev["status"])
	assert.Equal(t, false, ev["isAdminPost"])
	assert.Equal(t, "16:00", ev["endTime"])
	id := ev["id"].(string)

	// someone else's pending event
	code, res = ta.do(fiber.MethodPut, "/api/events/"+id, bob, fiber.Map{"title": "hijacked"})
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "You can only edit your own events", res["message"])
	code, _ = ta.do(fiber.MethodDelete, "/api/events/"+id, bob, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	// the author may edit while pending; "" clears the optional fields
	newDate := time.Now().UTC().AddDate(0, 0, 12).Format("2006-01-02")
	code, res = ta.do(fiber.MethodPut, "/api/events/"+id, alice, fiber.Map{
		"title":    "Go meetup, revised",
		"date":     newDate,
		"endTime":  "",
		"imageUrl": "",
		"location": "",
	})
	require.Equal(t, fiber.StatusOK, code, res)
	ev = dataMap(t, res)
	assert.Equal(t, "Go meetup, revised", ev["title"])
	assert.Nil(t, ev["endTime"])
	assert.Nil(t, ev["imageUrl"])
	assert.Equal(t, "Lab 3", ev["location"])
	assert.Equal(t, "PENDING", ev["status"])
	assert.Contains(t, ev["date"], newDate)

	code, res = ta.do(fiber.MethodPut, "/api/events/"+id, alice, fiber.Map{"endTime": "25:00"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, res["errors"], "endTime")

	// the author cannot approve their own event
	code, _ = ta.do(fiber.MethodPost, "/api/events/"+id+"/approve", alice, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, res = ta.do(fiber.MethodPost, "/api/events/"+id+"/approve", admin, nil)
	require.Equal(t, fiber.StatusOK, code, res)
	assert.Equal(t, "Event approved successfully", res["message"])
	assert.Equal(t, "APPROVED", dataMap(t, res)["status"])

	_, list := ta.do(fiber.MethodGet, "/api/events", "", nil)
	assert.Equal(t, []string{id}, ids(dataList(t, list)))

	// approval freezes the event for its author
	code, res = ta.do(fiber.MethodPut, "/api/events/"+id, alice, fiber.Map{"title": "sneaky"})
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Cannot edit approved events", res["message"])
	code, res = ta.do(fiber.MethodDelete, "/api/events/"+id, alice, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Cannot delete approved events", res["message"])

	code, res = ta.do(fiber.MethodPut, "/api/events/"+id, admin, fiber.Map{"title": "Edited by admin"})
	require.Equal(t, fiber.StatusOK, code, res)
	assert.Equal(t, "Edited by admin", dataMap(t, res)["title"])
	assert.Equal(t, "APPROVED", dataMap(t, res)["status"])

	code, res = ta.do(fiber.MethodDelete, "/api/events/"+id, admin, nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Event deleted successfully", res["message"])

	code, _ = ta.do(fiber.MethodGet, "/api/events/"+id, "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestEvents_RejectedStayHiddenFromPublicFilters(t *testing.T) {
	ta := newTestApp(t)
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)
	_, admin := ta.admin()

	id := ta.createEvent(alice, eventBody("Robotics demo", time.Now().UTC().AddDate(0, 0, 4)))["id"].(string)

	code, res := ta.do(fiber.MethodPost, "/api/events/"+id+"/reject", admin, nil)
	require.Equal(t, fiber.StatusOK, code, res)
	assert.Equal(t, "REJECTED", dataMap(t, res)["status"])

	for _, q := range []string{
		"",
		"?search=robotics",
		"?category=Workshop",
		"?search=robotics&category=Workshop&filter=upcoming",
		"?filter=all",
	} {
		_, body := ta.do(fiber.MethodGet, "/api/events"+q, "", nil)
		assert.Empty(t, dataList(t, body), q)
	}

	// an edit leaves it rejected and it is no longer pending
	code, res = ta.do(fiber.MethodPut, "/api/events/"+id, alice, fiber.Map{"title": "Robotics demo v2"})
	require.Equal(t, fiber.StatusOK, code, res)
	assert.Equal(t, "REJECTED", dataMap(t, res)["status"])

	_, body := ta.do(fiber.MethodGet, "/api/events/admin/pending", admin, nil)
	assert.Empty(t, dataList(t, body))

	_, body = ta.do(fiber.MethodGet, "/api/events/my-events", alice, nil)
	assert.Equal(t, []string{id}, ids(dataList(t, body)))
}

func TestEvents_PendingQueueOldestFirst(t *testing.T) {
	ta := newTestApp(t)
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)
	_, admin := ta.admin()

	// admin events skip the queue
	ta.createEvent(admin, eventBody("Published", time.Now().UTC().AddDate(0, 0, 1)))

	base := time.Now().UTC().Add(-time.Hour)
	var want []string
	for i, title := range []string{"first", "second"} {
		id := ta.createEvent(alice, eventBody(title, time.Now().UTC().AddDate(0, 0, 30-i)))["id"].(string)
		require.NoError(t, ta.db.Table("events").Where("id = ?", id).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
		want = append(want, id)
	}

	code, _ := ta.do(fiber.MethodGet, "/api/events/admin/pending", alice, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, body := ta.do(fiber.MethodGet, "/api/events/admin/pending", admin, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, want, ids(dataList(t, body)))
	assert.EqualValues(t, 2, body["pagination"].(map[string]any)["total"])
}

func TestEvents_Validation(t *testing.T) {
	ta := newTestApp(t)
	_, alice := ta.user("Alice Wanjiru", constants.RoleStudent)

	body := eventBody("Bad", time.Now())
	body["date"] = "next tuesday"
	body["time"] = "25:61"
	code, res := ta.do(fiber.MethodPost, "/api/events", alice, body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	errs := res["errors"].(map[string]any)
	assert.Contains(t, errs, "date")
	assert.Contains(t, errs, "time")
}

func TestEvents_DeleteCascadesLedgerAndDetachesPhotos(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	_, bob := ta.user("Bob Otieno", constants.RoleStudent)

	id := ta.createEvent(admin, eventBody("Demo day", time.Now().UTC().AddDate(0, 0, 1)))["id"].(string)
	code, _ := ta.do(fiber.MethodPost, "/api/events/"+id+"/register", bob, nil)
	require.Equal(t, fiber.StatusCreated, code)

	code, body := ta.do(fiber.MethodPost, "/api/gallery", admin, fiber.Map{
		"imageUrl": "https://cdn.example.com/demo.jpg",
		"caption":  "Demo day crowd",
		"eventId":  id,
	})
	require.Equal(t, fiber.StatusCreated, code, body)
	photoID := dataMap(t, body)["id"].(string)

	code, _ = ta.do(fiber.MethodDelete, "/api/events/"+id, admin, nil)
	require.Equal(t, fiber.StatusOK, code)

	var regs int64
	require.NoError(t, ta.db.Model(&eventModel.EventRegistrationModel{}).Count(&regs).Error)
	assert.Zero(t, regs)

	var photo galleryModel.GalleryPhotoModel
	require.NoError(t, ta.db.First(&photo, "id = ?", photoID).Error)
	assert.Nil(t, photo.EventID)
}

func TestGallery_AdminWritesPublicReads(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	_, bob := ta.user("Bob Otieno", constants.RoleStudent)

	eventID := ta.createEvent(admin, eventBody("Tech talk", time.Now().UTC().AddDate(0, 0, 5)))["id"].(string)

	photo := fiber.Map{"imageUrl": "https://cdn.example.com/a.jpg", "caption": "Speaker on stage", "eventId": eventID}
	code, _ := ta.do(fiber.MethodPost, "/api/gallery", bob, photo)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, body := ta.do(fiber.MethodPost, "/api/gallery", admin, fiber.Map{
		"imageUrl": "https://cdn.example.com/x.jpg",
		"eventId":  uuid.NewString(),
	})
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Event not found", body["message"])

	code, body = ta.do(fiber.MethodPost, "/api/gallery", admin, photo)
	require.Equal(t, fiber.StatusCreated, code, body)
	assert.Equal(t, "Photo added successfully", body["message"])
	withEvent := dataMap(t, body)["id"].(string)

	code, body = ta.do(fiber.MethodPost, "/api/gallery", admin, fiber.Map{"imageUrl": "https://cdn.example.com/b.jpg"})
	require.Equal(t, fiber.StatusCreated, code, body)
	loose := dataMap(t, body)["id"].(string)

	_, body = ta.do(fiber.MethodGet, "/api/gallery", "", nil)
	assert.ElementsMatch(t, []string{withEvent, loose}, ids(dataList(t, body)))
	assert.EqualValues(t, 12, body["pagination"].(map[string]any)["limit"])
	filters := body["filters"].(map[string]any)
	events := filters["events"].([]any)
	require.Len(t, events, 2)
	assert.Equal(t, "All", events[0].(map[string]any)["id"])
	assert.Equal(t, []any{float64(time.Now().UTC().Year())}, filters["years"])

	_, body = ta.do(fiber.MethodGet, "/api/gallery?eventId="+eventID, "", nil)
	assert.Equal(t, []string{withEvent}, ids(dataList(t, body)))
	_, body = ta.do(fiber.MethodGet, "/api/gallery?search=stage", "", nil)
	assert.Equal(t, []string{withEvent}, ids(dataList(t, body)))

	code, _ = ta.do(fiber.MethodGet, "/api/gallery?year=abc", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
	code, _ = ta.do(fiber.MethodGet, "/api/gallery?eventId=nope", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body = ta.do(fiber.MethodPut, "/api/gallery/"+withEvent, admin, fiber.Map{"caption": "", "eventId": ""})
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Nil(t, dataMap(t, body)["caption"])
	assert.Nil(t, dataMap(t, body)["eventId"])

	code, _ = ta.do(fiber.MethodDelete, "/api/gallery/"+loose, admin, nil)
	assert.Equal(t, fiber.StatusOK, code)
	code, _ = ta.do(fiber.MethodDelete, "/api/gallery/"+loose, admin, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}
