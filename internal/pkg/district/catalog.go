package district

// District is one Seoul administrative district (gu) with its official code
// and the centroid coordinates map markers anchor to.
type District struct {
	Name      string
	ShortName string
	Code      int
	Latitude  float64
	Longitude float64
}

// OtherBucket is the sentinel district for addresses no catalog entry or
// alias matches.
const OtherBucket = "기타지역"

// Catalog lists the 25 Seoul districts in the map widget's marker order.
// Classification does not scan in this order; see classifyOrder.
var Catalog = []District{
	{Name: "서울특별시 강남구", ShortName: "강남구", Code: 11680, Latitude: 37.5173, Longitude: 127.0473},
	{Name: "서울특별시 서초구", ShortName: "서초구", Code: 11650, Latitude: 37.4837, Longitude: 127.0324},
	{Name: "서울특별시 송파구", ShortName: "송파구", Code: 11710, Latitude: 37.5145, Longitude: 127.1059},
	{Name: "서울특별시 강동구", ShortName: "강동구", Code: 11740, Latitude: 37.5301, Longitude: 127.1238},
	{Name: "서울특별시 마포구", ShortName: "마포구", Code: 11440, Latitude: 37.5663, Longitude: 126.9019},
	{Name: "서울특별시 서대문구", ShortName: "서대문구", Code: 11410, Latitude: 37.5794, Longitude: 126.9368},
	{Name: "서울특별시 용산구", ShortName: "용산구", Code: 11170, Latitude: 37.5324, Longitude: 126.9900},
	{Name: "서울특별시 중구", ShortName: "중구", Code: 11140, Latitude: 37.5641, Longitude: 126.9979},
	{Name: "서울특별시 종로구", ShortName: "종로구", Code: 11110, Latitude: 37.5735, Longitude: 126.9788},
	{Name: "서울특별시 성북구", ShortName: "성북구", Code: 11290, Latitude: 37.5894, Longitude: 127.0167},
	{Name: "서울특별시 강북구", ShortName: "강북구", Code: 11305, Latitude: 37.6369, Longitude: 127.0252},
	{Name: "서울특별시 도봉구", ShortName: "도봉구", Code: 11320, Latitude: 37.6688, Longitude: 127.0471},
	{Name: "서울특별시 노원구", ShortName: "노원구", Code: 11350, Latitude: 37.6544, Longitude: 127.0565},
	{Name: "서울특별시 중랑구", ShortName: "중랑구", Code: 11260, Latitude: 37.6063, Longitude: 127.0925},
	{Name: "서울특별시 동대문구", ShortName: "동대문구", Code: 11230, Latitude: 37.5744, Longitude: 127.0395},
	{Name: "서울특별시 광진구", ShortName: "광진구", Code: 11215, Latitude: 37.5385, Longitude: 127.0823},
	{Name: "서울특별시 성동구", ShortName: "성동구", Code: 11200, Latitude: 37.5634, Longitude: 127.0365},
	{Name: "서울특별시 영등포구", ShortName: "영등포구", Code: 11560, Latitude: 37.5264, Longitude: 126.8962},
	{Name: "서울특별시 동작구", ShortName: "동작구", Code: 11590, Latitude: 37.5124, Longitude: 126.9393},
	{Name: "서울특별시 관악구", ShortName: "관악구", Code: 11620, Latitude: 37.4781, Longitude: 126.9515},
	{Name: "서울특별시 구로구", ShortName: "구로구", Code: 11530, Latitude: 37.4955, Longitude: 126.8874},
	{Name: "서울특별시 금천구", ShortName: "금천구", Code: 11545, Latitude: 37.4570, Longitude: 126.8955},
	{Name: "서울특별시 양천구", ShortName: "양천구", Code: 11470, Latitude: 37.5170, Longitude: 126.8662},
	{Name: "서울특별시 강서구", ShortName: "강서구", Code: 11500, Latitude: 37.5509, Longitude: 126.8495},
	{Name: "서울특별시 은평구", ShortName: "은평구", Code: 11380, Latitude: 37.6027, Longitude: 126.9291},
}

// ByName returns the catalog entry whose full name matches, or nil.
func ByName(name string) *District {
	for i := range Catalog {
		if Catalog[i].Name == name || Catalog[i].ShortName == name {
			return &Catalog[i]
		}
	}
	return nil
}
