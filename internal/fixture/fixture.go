// Package fixture holds the default collection content for the Núi Bà Đen
// tourism service. The set is constructed explicitly and injected into the
// file repository at startup; it backs any collection without a data file.
package fixture

import (
	"encoding/json"

	"github.com/nuibaden/tourism-service/internal/domain"
)

// Set is the injectable default content for every collection.
type Set struct {
	POIs        []domain.PointOfInterest
	Activities  []domain.Activity
	Services    []domain.Service
	Events      []domain.Event
	Tours       []domain.Tour
	Restaurants []domain.Restaurant
}

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

// Default returns the built-in content set.
func Default() Set {
	return Set{
		POIs: []domain.PointOfInterest{
			{
				ID:          1,
				Name:        "Chùa Bà",
				NameEn:      strPtr("Ba Den Pagoda"),
				Description: strPtr("Điểm hành hương nổi tiếng trên Núi Bà Đen."),
				Latitude:    11.3127,
				Longitude:   106.1303,
				Category:    domain.CategoryReligious,
				Elevation:   f64Ptr(350),
				Featured:    boolPtr(true),
			},
			{
				ID:          2,
				Name:        "Đỉnh Núi Bà Đen",
				NameEn:      strPtr("Ba Den Mountain Summit"),
				Description: strPtr("Đỉnh núi cao nhất Nam Bộ với phong cảnh hùng vĩ."),
				Latitude:    11.3047,
				Longitude:   106.1355,
				Category:    domain.CategoryViewpoint,
				Elevation:   f64Ptr(986),
				Featured:    boolPtr(true),
			},
			{
				ID:          3,
				Name:        "Nhà ga cáp treo",
				NameEn:      strPtr("Cable Car Station"),
				Description: strPtr("Điểm xuất phát tuyến cáp treo."),
				Latitude:    11.3091,
				Longitude:   106.1278,
				Category:    domain.CategoryCable,
				Elevation:   f64Ptr(50),
			},
			{
				ID:          4,
				Name:        "Tượng Phật Bà Tây Bổ Đà Sơn",
				NameEn:      strPtr("Tay Bo Da Son Buddha Statue"),
				Description: strPtr("Tượng Phật Bà bằng đồng cao nhất châu Á trên đỉnh núi."),
				Latitude:    11.3052,
				Longitude:   106.1361,
				Category:    domain.CategoryReligious,
				Elevation:   f64Ptr(960),
				Featured:    boolPtr(true),
			},
			{
				ID:          5,
				Name:        "Bãi đỗ xe trung tâm",
				NameEn:      strPtr("Central Parking"),
				Description: strPtr("Bãi đỗ xe chính tại chân núi."),
				Latitude:    11.3105,
				Longitude:   106.1252,
				Category:    domain.CategoryParking,
			},
			{
				ID:          6,
				Name:        "Nhà hàng chay Vân Sơn",
				NameEn:      strPtr("Van Son Vegetarian Restaurant"),
				Description: strPtr("Ẩm thực chay trên tuyến lên chùa."),
				Latitude:    11.3119,
				Longitude:   106.1310,
				Category:    domain.CategoryFood,
			},
		},
		Activities: []domain.Activity{
			json.RawMessage(`{"id":1,"name":"Leo núi ban đêm","level":"hard"}`),
			json.RawMessage(`{"id":2,"name":"Ngắm bình minh trên đỉnh","level":"easy"}`),
			json.RawMessage(`{"id":3,"name":"Dâng đăng cầu an","level":"easy"}`),
		},
		Services: []domain.Service{
			{
				ID:          1,
				Name:        "Cáp treo Núi Bà Đen",
				Description: "Trải nghiệm cáp treo với tầm nhìn toàn cảnh núi Bà Đen.",
				Price:       200000,
				Image:       "https://example.com/images/cap-treo.jpg",
			},
			{
				ID:          2,
				Name:        "Hướng dẫn viên du lịch",
				Description: "Tour tham quan lịch sử, văn hoá địa phương.",
				Price:       500000,
				Image:       "https://example.com/images/huong-dan-vien.jpg",
			},
			{
				ID:          3,
				Name:        "Thuê xe điện",
				Description: "Di chuyển thuận tiện quanh khu du lịch.",
				Price:       150000,
				Image:       "https://example.com/images/xe-dien.jpg",
			},
		},
		Events: []domain.Event{
			{
				ID:          1,
				Name:        "Lễ hội Xuân Núi Bà",
				Date:        "2025-02-15",
				Description: "Lễ hội truyền thống với nhiều hoạt động văn hoá đặc sắc.",
				Image:       "https://example.com/images/le-hoi-xuan.jpg",
			},
			{
				ID:          2,
				Name:        "Giải leo núi Bà Đen",
				Date:        "2025-06-10",
				Description: "Sự kiện thể thao dành cho người yêu leo núi.",
				Image:       "https://example.com/images/leo-nui.jpg",
			},
		},
		Tours: []domain.Tour{
			{
				ID:          1,
				Name:        "Tour tâm linh Chùa Bà",
				Description: "Hành hương Chùa Bà và Tượng Phật Bà Tây Bổ Đà Sơn.",
				Duration:    "1 ngày",
				Schedule:    "Hàng ngày, khởi hành 7:00",
				Location:    "Chân núi Bà Đen",
				Price:       650000,
				Image:       "https://example.com/images/tour-tam-linh.jpg",
			},
			{
				ID:          2,
				Name:        "Trekking đỉnh Bà Đen",
				Description: "Chinh phục nóc nhà Nam Bộ theo đường cột điện.",
				Duration:    "2 ngày 1 đêm",
				Schedule:    "Cuối tuần",
				Location:    "Cổng trekking Ma Thiên Lãnh",
				Price:       1200000,
				Image:       "https://example.com/images/tour-trekking.jpg",
			},
		},
		Restaurants: []domain.Restaurant{
			{
				ID:          1,
				Name:        "Nhà hàng Vân Sơn",
				Description: "Ẩm thực chay thanh tịnh giữa lưng chừng núi.",
				Address:     "Khu du lịch Núi Bà Đen, Tây Ninh",
				Specialty:   "Cơm chay, lẩu nấm",
				Image:       "https://example.com/images/nha-hang-van-son.jpg",
			},
			{
				ID:          2,
				Name:        "Quán bánh canh Trảng Bàng",
				Description: "Đặc sản bánh canh và bánh tráng phơi sương Tây Ninh.",
				Address:     "Thị xã Trảng Bàng, Tây Ninh",
				Specialty:   "Bánh canh Trảng Bàng",
				Image:       "https://example.com/images/banh-canh.jpg",
			},
		},
	}
}
